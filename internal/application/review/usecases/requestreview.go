package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/infrastructure/email"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type RequestReviewCommand struct {
	TicketID          uint
	RequesterID       uint
	RequestedUsername string
}

type RequestReviewResult struct {
	RequestID       uint
	RequestedUserID uint
	CreatedAt       time.Time
}

// RequestReviewUseCase records a review request and notifies the
// requested user by email when they have one configured. Email failure
// never fails the request.
type RequestReviewUseCase struct {
	requestRepo review.ReviewRequestRepository
	ticketRepo  ticket.TicketRepository
	userRepo    user.UserRepository
	emailSender email.Sender
	logger      logger.Interface
}

func NewRequestReviewUseCase(
	requestRepo review.ReviewRequestRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	emailSender email.Sender,
	logger logger.Interface,
) *RequestReviewUseCase {
	return &RequestReviewUseCase{
		requestRepo: requestRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		emailSender: emailSender,
		logger:      logger,
	}
}

func (uc *RequestReviewUseCase) Execute(ctx context.Context, cmd RequestReviewCommand) (*RequestReviewResult, error) {
	uc.logger.Infow("executing request review use case",
		"ticket_id", cmd.TicketID, "requester_id", cmd.RequesterID, "requested_username", cmd.RequestedUsername)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}
	if cmd.RequestedUsername == "" {
		return nil, errors.NewValidationError("requested username is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	requested, err := uc.userRepo.GetByUsername(ctx, cmd.RequestedUsername)
	if err != nil {
		return nil, errors.NewNotFoundError("requested user not found")
	}

	request, err := review.NewReviewRequest(cmd.TicketID, cmd.RequesterID, requested.ID())
	if err != nil {
		return nil, errors.NewInvalidOperationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		uc.logger.Errorw("failed to save review request", "error", err)
		return nil, errors.NewInternalError("failed to save review request", err.Error())
	}

	uc.notify(ctx, requested, t, cmd.RequesterID)

	uc.logger.Infow("review request created", "request_id", request.ID(), "requested_user_id", requested.ID())

	return &RequestReviewResult{
		RequestID:       request.ID(),
		RequestedUserID: requested.ID(),
		CreatedAt:       request.CreatedAt(),
	}, nil
}

func (uc *RequestReviewUseCase) notify(ctx context.Context, requested *user.User, t *ticket.Ticket, requesterID uint) {
	if uc.emailSender == nil || requested.Email() == "" {
		return
	}

	requesterName := "A user"
	if requester, err := uc.userRepo.GetByID(ctx, requesterID); err == nil {
		requesterName = requester.Username()
	}

	if err := uc.emailSender.SendReviewRequestEmail(requested.Email(), requesterName, t.Title()); err != nil {
		uc.logger.Warnw("failed to send review request email",
			"error", err, "requested_user_id", requested.ID())
	}
}
