package usecases

import (
	"context"
	"time"

	"revu/internal/domain/permission"
	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Rating   *int
	Headline *string
	Body     *string
}

type UpdateReviewResult struct {
	ReviewID  uint
	UpdatedAt time.Time
}

type UpdateReviewUseCase struct {
	reviewRepo review.ReviewRepository
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewUpdateReviewUseCase(
	reviewRepo review.ReviewRepository,
	authorizer permission.Authorizer,
	logger logger.Interface,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error) {
	uc.logger.Infow("executing update review use case", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)

	if cmd.ReviewID == 0 {
		return nil, errors.NewValidationError("review ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, errors.NewNotFoundError("review not found")
	}

	if !r.IsOwnedBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the review owner can update it")
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.ActorID, permission.ResourceReview, permission.ActionEdit)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to edit reviews")
	}

	if cmd.Rating != nil {
		if err := r.UpdateRating(*cmd.Rating); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Headline != nil {
		if err := r.UpdateHeadline(*cmd.Headline); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Body != nil {
		if err := r.UpdateBody(*cmd.Body); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "error", err, "review_id", cmd.ReviewID)
		return nil, errors.NewInternalError("failed to update review", err.Error())
	}

	uc.logger.Infow("review updated successfully", "review_id", r.ID())

	return &UpdateReviewResult{
		ReviewID:  r.ID(),
		UpdatedAt: r.UpdatedAt(),
	}, nil
}
