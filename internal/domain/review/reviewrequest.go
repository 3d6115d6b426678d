package review

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

// ReviewRequest records that a user asked another user to review a
// ticket. It carries no state beyond the three identities.
type ReviewRequest struct {
	id              uint
	ticketID        uint
	requesterID     uint
	requestedUserID uint
	createdAt       time.Time
}

func NewReviewRequest(ticketID, requesterID, requestedUserID uint) (*ReviewRequest, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if requestedUserID == 0 {
		return nil, fmt.Errorf("requested user ID is required")
	}
	if requesterID == requestedUserID {
		return nil, fmt.Errorf("cannot request a review from yourself")
	}

	return &ReviewRequest{
		ticketID:        ticketID,
		requesterID:     requesterID,
		requestedUserID: requestedUserID,
		createdAt:       biztime.NowUTC(),
	}, nil
}

func ReconstructReviewRequest(
	id uint,
	ticketID uint,
	requesterID uint,
	requestedUserID uint,
	createdAt time.Time,
) (*ReviewRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("review request ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if requestedUserID == 0 {
		return nil, fmt.Errorf("requested user ID is required")
	}

	return &ReviewRequest{
		id:              id,
		ticketID:        ticketID,
		requesterID:     requesterID,
		requestedUserID: requestedUserID,
		createdAt:       createdAt,
	}, nil
}

func (rr *ReviewRequest) ID() uint {
	return rr.id
}

func (rr *ReviewRequest) TicketID() uint {
	return rr.ticketID
}

func (rr *ReviewRequest) RequesterID() uint {
	return rr.requesterID
}

func (rr *ReviewRequest) RequestedUserID() uint {
	return rr.requestedUserID
}

func (rr *ReviewRequest) CreatedAt() time.Time {
	return rr.createdAt
}

func (rr *ReviewRequest) SetID(id uint) error {
	if rr.id != 0 {
		return fmt.Errorf("review request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review request ID cannot be zero")
	}
	rr.id = id
	return nil
}
