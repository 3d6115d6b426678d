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

type CreateTicketWithReviewCommand struct {
	Title       string
	Description string
	Image       string
	OwnerID     uint

	Rating   int
	Headline string
	Body     string
}

type CreateTicketWithReviewResult struct {
	TicketID  uint
	ReviewID  uint
	CreatedAt time.Time
}

// CreateTicketWithReviewUseCase creates a ticket and its first review
// atomically. Both records share the same owner.
type CreateTicketWithReviewUseCase struct {
	ticketRepo ticket.TicketRepository
	reviewRepo review.ReviewRepository
	authorizer permission.Authorizer
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketWithReviewUseCase(
	ticketRepo ticket.TicketRepository,
	reviewRepo review.ReviewRepository,
	authorizer permission.Authorizer,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketWithReviewUseCase {
	return &CreateTicketWithReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		authorizer: authorizer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketWithReviewUseCase) Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error) {
	uc.logger.Infow("executing create ticket with review use case", "title", cmd.Title, "owner_id", cmd.OwnerID)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	for _, check := range []struct {
		resource string
		action   string
	}{
		{permission.ResourceTicket, permission.ActionCreate},
		{permission.ResourceReview, permission.ActionCreate},
	} {
		allowed, err := uc.authorizer.Can(ctx, cmd.OwnerID, check.resource, check.action)
		if err != nil {
			return nil, errors.NewInternalError("failed to check permission", err.Error())
		}
		if !allowed {
			return nil, errors.NewForbiddenError("not allowed to create " + check.resource + "s")
		}
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Image, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var newReview *review.Review
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		r, err := review.NewReview(newTicket.ID(), cmd.Rating, cmd.Headline, cmd.Body, cmd.OwnerID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.reviewRepo.Save(txCtx, r); err != nil {
			return err
		}

		newReview = r
		return nil
	})
	if err != nil {
		if errors.IsValidationError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create ticket with review", "error", err)
		return nil, errors.NewInternalError("failed to create ticket with review", err.Error())
	}

	uc.logger.Infow("ticket with review created successfully",
		"ticket_id", newTicket.ID(), "review_id", newReview.ID())

	return &CreateTicketWithReviewResult{
		TicketID:  newTicket.ID(),
		ReviewID:  newReview.ID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
