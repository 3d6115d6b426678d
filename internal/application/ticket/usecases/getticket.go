package usecases

import (
	"context"

	"revu/internal/application/ticket/dto"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result := &dto.TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Image:       t.Image(),
		OwnerID:     t.OwnerID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	if t.Description() != "" {
		html, err := uc.markdown.ToHTMLSanitized(t.Description())
		if err != nil {
			uc.logger.Warnw("failed to render ticket description", "error", err, "ticket_id", t.ID())
		} else {
			result.DescriptionHTML = html
		}
	}

	if owner, err := uc.userRepo.GetByID(ctx, t.OwnerID()); err == nil {
		result.OwnerUsername = owner.Username()
	}

	return result, nil
}
