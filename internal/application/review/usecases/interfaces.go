package usecases

import (
	"context"
)

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) (*DeleteReviewResult, error)
}

type RequestReviewExecutor interface {
	Execute(ctx context.Context, cmd RequestReviewCommand) (*RequestReviewResult, error)
}

type ListReviewsExecutor interface {
	Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error)
}
