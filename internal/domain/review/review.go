package review

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

const (
	MinRating         = 0
	MaxRating         = 5
	MaxHeadlineLength = 128
	MaxBodyLength     = 8192
)

// Review is a rated evaluation attached to exactly one ticket.
// The ticket reference and owner are fixed at creation.
type Review struct {
	id        uint
	ticketID  uint
	rating    int
	headline  string
	body      string
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(
	ticketID uint,
	rating int,
	headline string,
	body string,
	ownerID uint,
) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(headline) == 0 {
		return nil, fmt.Errorf("headline is required")
	}
	if len(headline) > MaxHeadlineLength {
		return nil, fmt.Errorf("headline exceeds maximum length of %d characters", MaxHeadlineLength)
	}
	if len(body) > MaxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Review{
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id uint,
	ticketID uint,
	rating int,
	headline string,
	body string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) OwnerID() uint {
	return r.ownerID
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsOwnedBy reports whether the given user owns this review.
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.ownerID == userID
}

func (r *Review) UpdateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	r.rating = rating
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Review) UpdateHeadline(headline string) error {
	if len(headline) == 0 {
		return fmt.Errorf("headline is required")
	}
	if len(headline) > MaxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", MaxHeadlineLength)
	}

	r.headline = headline
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Review) UpdateBody(body string) error {
	if len(body) > MaxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}

	r.body = body
	r.updatedAt = biztime.NowUTC()
	return nil
}
