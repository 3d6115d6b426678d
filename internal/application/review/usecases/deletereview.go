package usecases

import (
	"context"

	"revu/internal/domain/permission"
	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	ActorID  uint
}

type DeleteReviewResult struct {
	ReviewID uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.ReviewRepository
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewDeleteReviewUseCase(
	reviewRepo review.ReviewRepository,
	authorizer permission.Authorizer,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) (*DeleteReviewResult, error) {
	uc.logger.Infow("executing delete review use case", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)

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
		return nil, errors.NewForbiddenError("only the review owner can delete it")
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.ActorID, permission.ResourceReview, permission.ActionDelete)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to delete reviews")
	}

	if err := uc.reviewRepo.Delete(ctx, cmd.ReviewID); err != nil {
		uc.logger.Errorw("failed to delete review", "error", err, "review_id", cmd.ReviewID)
		return nil, errors.NewInternalError("failed to delete review", err.Error())
	}

	uc.logger.Infow("review deleted successfully", "review_id", cmd.ReviewID)

	return &DeleteReviewResult{ReviewID: cmd.ReviewID}, nil
}
