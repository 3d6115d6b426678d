package ticket

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

// Ticket is a user's request for reviews of a product or work.
// The owner is fixed at creation; only the owner may mutate or delete it.
type Ticket struct {
	id          uint
	title       string
	description string
	image       string
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	image string,
	ownerID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		image:       image,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	image string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		image:       image,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Image() string {
	return t.image
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether the given user owns this ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}

	t.title = title
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}

	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateImage replaces the attached image reference. An empty reference
// removes the attachment.
func (t *Ticket) UpdateImage(image string) {
	t.image = image
	t.updatedAt = biztime.NowUTC()
}
