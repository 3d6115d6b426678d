package usecases

import (
	"context"
	"time"

	"revu/internal/domain/feed"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserID uint
}

// DashboardItem is one entry in the owner's merged activity list.
// Exactly one of Ticket or Review is set.
type DashboardItem struct {
	Kind      string     `json:"kind"`
	ID        uint       `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Ticket    *TicketRef `json:"ticket,omitempty"`
	Review    *ReviewRef `json:"review,omitempty"`
}

type DashboardRequest struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	RequesterID uint      `json:"requester_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetDashboardResult summarizes a user's own activity: their tickets
// and reviews merged newest first, plus review requests addressed to
// them.
type GetDashboardResult struct {
	Items    []DashboardItem
	Requests []DashboardRequest
}

type GetDashboardUseCase struct {
	ticketRepo  ticket.TicketRepository
	reviewRepo  review.ReviewRepository
	requestRepo review.ReviewRequestRepository
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	ticketRepo ticket.TicketRepository,
	reviewRepo review.ReviewRepository,
	requestRepo review.ReviewRequestRepository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo:  ticketRepo,
		reviewRepo:  reviewRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	tickets, err := uc.ticketRepo.GetByOwner(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user tickets", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard", err.Error())
	}

	reviews, err := uc.reviewRepo.GetByOwner(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user reviews", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard", err.Error())
	}

	requests, err := uc.requestRepo.GetByRequestedUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load review requests", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard", err.Error())
	}

	items := make([]feed.Item, 0, len(tickets)+len(reviews))
	for _, t := range tickets {
		item, err := feed.NewTicketItem(t)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	for _, r := range reviews {
		item, err := feed.NewReviewItem(r)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	feed.Sort(items)

	result := &GetDashboardResult{
		Items:    make([]DashboardItem, 0, len(items)),
		Requests: make([]DashboardRequest, 0, len(requests)),
	}
	for _, item := range items {
		dto := DashboardItem{
			Kind:      string(item.Kind),
			ID:        item.ID,
			CreatedAt: item.CreatedAt,
		}
		switch item.Kind {
		case feed.KindTicket:
			dto.Ticket = &TicketRef{
				Title:       item.Ticket.Title(),
				Description: item.Ticket.Description(),
				Image:       item.Ticket.Image(),
			}
		case feed.KindReview:
			dto.Review = &ReviewRef{
				TicketID: item.Review.TicketID(),
				Rating:   item.Review.Rating(),
				Headline: item.Review.Headline(),
				Body:     item.Review.Body(),
			}
		}
		result.Items = append(result.Items, dto)
	}
	for _, rr := range requests {
		result.Requests = append(result.Requests, DashboardRequest{
			ID:          rr.ID(),
			TicketID:    rr.TicketID(),
			RequesterID: rr.RequesterID(),
			CreatedAt:   rr.CreatedAt(),
		})
	}

	return result, nil
}
