package usecases

import (
	"context"

	"revu/internal/domain/permission"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type DeleteTicketResult struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket together with its reviews and
// review requests inside a single transaction.
type DeleteTicketUseCase struct {
	ticketRepo        ticket.TicketRepository
	reviewRepo        review.ReviewRepository
	reviewRequestRepo review.ReviewRequestRepository
	authorizer        permission.Authorizer
	txManager         TransactionManager
	logger            logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	reviewRepo review.ReviewRepository,
	reviewRequestRepo review.ReviewRequestRepository,
	authorizer permission.Authorizer,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:        ticketRepo,
		reviewRepo:        reviewRepo,
		reviewRequestRepo: reviewRequestRepo,
		authorizer:        authorizer,
		txManager:         txManager,
		logger:            logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.IsOwnedBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the ticket owner can delete it")
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.ActorID, permission.ResourceTicket, permission.ActionDelete)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to delete tickets")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		if err := uc.reviewRequestRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to delete ticket", err.Error())
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
