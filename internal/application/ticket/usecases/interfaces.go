package usecases

import (
	"context"

	"revu/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a database transaction.
// The context passed to fn carries the transaction handle.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketWithReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
