package usecases

import (
	"context"
	"time"

	"revu/internal/domain/permission"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	Title       *string
	Description *string
	Image       *string
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	authorizer permission.Authorizer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

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
		return nil, errors.NewForbiddenError("only the ticket owner can update it")
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.ActorID, permission.ResourceTicket, permission.ActionEdit)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to edit tickets")
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Image != nil {
		t.UpdateImage(*cmd.Image)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket", err.Error())
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
