package usecases

import (
	"context"

	"revu/internal/application/review/dto"
	"revu/internal/domain/review"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/services/markdown"
	"revu/internal/shared/utils"
)

type ListReviewsQuery struct {
	OwnerID    *uint
	TicketID   *uint
	Pagination utils.Pagination
}

type ListReviewsResult struct {
	Reviews []dto.ReviewDTO
	Total   int64
}

type ListReviewsUseCase struct {
	reviewRepo review.ReviewRepository
	userRepo   user.UserRepository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewListReviewsUseCase(
	reviewRepo review.ReviewRepository,
	userRepo user.UserRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	filter := review.ReviewFilter{
		OwnerID:  query.OwnerID,
		TicketID: query.TicketID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	reviews, total, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err)
		return nil, errors.NewInternalError("failed to list reviews", err.Error())
	}

	usernames := uc.usernamesFor(ctx, reviews)

	items := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		item := dto.ReviewDTO{
			ID:            r.ID(),
			TicketID:      r.TicketID(),
			Rating:        r.Rating(),
			Headline:      r.Headline(),
			Body:          r.Body(),
			OwnerID:       r.OwnerID(),
			OwnerUsername: usernames[r.OwnerID()],
			CreatedAt:     r.CreatedAt(),
			UpdatedAt:     r.UpdatedAt(),
		}
		if r.Body() != "" {
			if html, err := uc.markdown.ToHTMLSanitized(r.Body()); err == nil {
				item.BodyHTML = html
			}
		}
		items = append(items, item)
	}

	return &ListReviewsResult{Reviews: items, Total: total}, nil
}

func (uc *ListReviewsUseCase) usernamesFor(ctx context.Context, reviews []*review.Review) map[uint]string {
	seen := make(map[uint]bool)
	var ids []uint
	for _, r := range reviews {
		if !seen[r.OwnerID()] {
			seen[r.OwnerID()] = true
			ids = append(ids, r.OwnerID())
		}
	}

	usernames := make(map[uint]string, len(ids))
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve review owners", "error", err)
		return usernames
	}
	for _, u := range users {
		usernames[u.ID()] = u.Username()
	}
	return usernames
}
