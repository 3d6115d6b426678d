package usecases

import (
	"context"
	"time"

	"revu/internal/domain/permission"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Image       string
	OwnerID     uint
}

type CreateTicketResult struct {
	TicketID  uint
	Title     string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	authorizer permission.Authorizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.OwnerID, permission.ResourceTicket, permission.ActionCreate)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to create tickets")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Image, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket", err.Error())
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Title:     newTicket.Title(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > ticket.MaxTitleLength {
		return errors.NewValidationError("title exceeds maximum length")
	}

	if len(cmd.Description) > ticket.MaxDescriptionLength {
		return errors.NewValidationError("description exceeds maximum length")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	return nil
}
