package usecases

import (
	"context"
	"time"

	"revu/internal/domain/permission"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type CreateReviewCommand struct {
	TicketID uint
	Rating   int
	Headline string
	Body     string
	OwnerID  uint
}

type CreateReviewResult struct {
	ReviewID  uint
	TicketID  uint
	CreatedAt time.Time
}

type CreateReviewUseCase struct {
	reviewRepo review.ReviewRepository
	ticketRepo ticket.TicketRepository
	authorizer permission.Authorizer
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.ReviewRepository,
	ticketRepo ticket.TicketRepository,
	authorizer permission.Authorizer,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	uc.logger.Infow("executing create review use case", "ticket_id", cmd.TicketID, "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create review command", "error", err)
		return nil, err
	}

	allowed, err := uc.authorizer.Can(ctx, cmd.OwnerID, permission.ResourceReview, permission.ActionCreate)
	if err != nil {
		return nil, errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		return nil, errors.NewForbiddenError("not allowed to create reviews")
	}

	// The reviewed ticket must exist.
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	newReview, err := review.NewReview(cmd.TicketID, cmd.Rating, cmd.Headline, cmd.Body, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, newReview); err != nil {
		uc.logger.Errorw("failed to save review", "error", err)
		return nil, errors.NewInternalError("failed to save review", err.Error())
	}

	uc.logger.Infow("review created successfully", "review_id", newReview.ID(), "ticket_id", cmd.TicketID)

	return &CreateReviewResult{
		ReviewID:  newReview.ID(),
		TicketID:  newReview.TicketID(),
		CreatedAt: newReview.CreatedAt(),
	}, nil
}

func (uc *CreateReviewUseCase) validateCommand(cmd CreateReviewCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if cmd.Rating < review.MinRating || cmd.Rating > review.MaxRating {
		return errors.NewValidationError("rating must be between 0 and 5")
	}

	if len(cmd.Headline) == 0 {
		return errors.NewValidationError("headline is required")
	}

	if len(cmd.Headline) > review.MaxHeadlineLength {
		return errors.NewValidationError("headline exceeds maximum length")
	}

	if len(cmd.Body) > review.MaxBodyLength {
		return errors.NewValidationError("body exceeds maximum length")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	return nil
}
