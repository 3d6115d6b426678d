package usecases

import (
	"context"

	"revu/internal/application/ticket/dto"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type ListTicketsQuery struct {
	OwnerID    *uint
	Pagination utils.Pagination
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	filter := ticket.TicketFilter{
		OwnerID:  query.OwnerID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets", err.Error())
	}

	usernames := uc.usernamesFor(ctx, tickets)

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.TicketDTO{
			ID:            t.ID(),
			Title:         t.Title(),
			Description:   t.Description(),
			Image:         t.Image(),
			OwnerID:       t.OwnerID(),
			OwnerUsername: usernames[t.OwnerID()],
			CreatedAt:     t.CreatedAt(),
			UpdatedAt:     t.UpdatedAt(),
		})
	}

	return &ListTicketsResult{Tickets: items, Total: total}, nil
}

func (uc *ListTicketsUseCase) usernamesFor(ctx context.Context, tickets []*ticket.Ticket) map[uint]string {
	seen := make(map[uint]bool)
	var ids []uint
	for _, t := range tickets {
		if !seen[t.OwnerID()] {
			seen[t.OwnerID()] = true
			ids = append(ids, t.OwnerID())
		}
	}

	usernames := make(map[uint]string, len(ids))
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve ticket owners", "error", err)
		return usernames
	}
	for _, u := range users {
		usernames[u.ID()] = u.Username()
	}
	return usernames
}
