package usecases

import "context"

// GetFeedExecutor defines the feed query contract.
type GetFeedExecutor interface {
	Execute(ctx context.Context, query GetFeedQuery) (*GetFeedResult, error)
}

// GetDashboardExecutor defines the dashboard query contract.
type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error)
}
