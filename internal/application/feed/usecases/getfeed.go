package usecases

import (
	"context"
	"time"

	"revu/internal/domain/feed"
	"revu/internal/domain/relationship"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type GetFeedQuery struct {
	UserID     uint
	Pagination utils.Pagination
}

// FeedItemDTO is one entry in the rendered feed. Exactly one of Ticket
// or Review is set.
type FeedItemDTO struct {
	Kind          string     `json:"kind"`
	ID            uint       `json:"id"`
	OwnerID       uint       `json:"owner_id"`
	OwnerUsername string     `json:"owner_username,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Ticket        *TicketRef `json:"ticket,omitempty"`
	Review        *ReviewRef `json:"review,omitempty"`
}

type TicketRef struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type ReviewRef struct {
	TicketID uint   `json:"ticket_id"`
	Rating   int    `json:"rating"`
	Headline string `json:"headline"`
	Body     string `json:"body,omitempty"`
}

type GetFeedResult struct {
	Items []FeedItemDTO
	Total int64
}

// GetFeedUseCase assembles a user's feed: tickets and reviews authored
// by users they follow, excluding anyone they have blocked.
type GetFeedUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	ticketRepo       ticket.TicketRepository
	reviewRepo       review.ReviewRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewGetFeedUseCase(
	relationshipRepo relationship.RelationshipRepository,
	ticketRepo ticket.TicketRepository,
	reviewRepo review.ReviewRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetFeedUseCase {
	return &GetFeedUseCase{
		relationshipRepo: relationshipRepo,
		ticketRepo:       ticketRepo,
		reviewRepo:       reviewRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *GetFeedUseCase) Execute(ctx context.Context, query GetFeedQuery) (*GetFeedResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	authorIDs, err := uc.eligibleAuthors(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	if len(authorIDs) == 0 {
		return &GetFeedResult{Items: []FeedItemDTO{}, Total: 0}, nil
	}

	tickets, err := uc.ticketRepo.GetByOwners(ctx, authorIDs)
	if err != nil {
		uc.logger.Errorw("failed to load feed tickets", "error", err)
		return nil, errors.NewInternalError("failed to load feed", err.Error())
	}

	reviews, err := uc.reviewRepo.GetByOwners(ctx, authorIDs)
	if err != nil {
		uc.logger.Errorw("failed to load feed reviews", "error", err)
		return nil, errors.NewInternalError("failed to load feed", err.Error())
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

	total := int64(len(items))
	items = paginate(items, pagination)

	usernames := uc.usernamesFor(ctx, items)

	dtos := make([]FeedItemDTO, 0, len(items))
	for _, item := range items {
		dto := FeedItemDTO{
			Kind:          string(item.Kind),
			ID:            item.ID,
			OwnerID:       item.OwnerID,
			OwnerUsername: usernames[item.OwnerID],
			CreatedAt:     item.CreatedAt,
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
		dtos = append(dtos, dto)
	}

	return &GetFeedResult{Items: dtos, Total: total}, nil
}

// eligibleAuthors returns followed users minus blocked users.
func (uc *GetFeedUseCase) eligibleAuthors(ctx context.Context, userID uint) ([]uint, error) {
	following, err := uc.relationshipRepo.ListFollowing(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list following", "error", err)
		return nil, errors.NewInternalError("failed to load feed", err.Error())
	}

	blocked, err := uc.relationshipRepo.ListBlocked(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list blocked users", "error", err)
		return nil, errors.NewInternalError("failed to load feed", err.Error())
	}

	blockedSet := make(map[uint]bool, len(blocked))
	for _, id := range blocked {
		blockedSet[id] = true
	}

	eligible := make([]uint, 0, len(following))
	for _, id := range following {
		if !blockedSet[id] {
			eligible = append(eligible, id)
		}
	}
	return eligible, nil
}

func paginate(items []feed.Item, p utils.Pagination) []feed.Item {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return []feed.Item{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (uc *GetFeedUseCase) usernamesFor(ctx context.Context, items []feed.Item) map[uint]string {
	seen := make(map[uint]bool)
	var ids []uint
	for _, item := range items {
		if !seen[item.OwnerID] {
			seen[item.OwnerID] = true
			ids = append(ids, item.OwnerID)
		}
	}

	usernames := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return usernames
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve feed authors", "error", err)
		return usernames
	}
	for _, u := range users {
		usernames[u.ID()] = u.Username()
	}
	return usernames
}
