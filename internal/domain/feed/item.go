package feed

import (
	"fmt"
	"sort"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
)

// Kind discriminates feed item payloads.
type Kind string

const (
	KindTicket Kind = "ticket"
	KindReview Kind = "review"
)

// Item is one entry in a user's feed. Exactly one of Ticket or Review
// is non-nil, matching Kind.
type Item struct {
	Kind      Kind
	ID        uint
	OwnerID   uint
	CreatedAt time.Time
	Ticket    *ticket.Ticket
	Review    *review.Review
}

func NewTicketItem(t *ticket.Ticket) (Item, error) {
	if t == nil {
		return Item{}, fmt.Errorf("ticket is required")
	}
	return Item{
		Kind:      KindTicket,
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		CreatedAt: t.CreatedAt(),
		Ticket:    t,
	}, nil
}

func NewReviewItem(r *review.Review) (Item, error) {
	if r == nil {
		return Item{}, fmt.Errorf("review is required")
	}
	return Item{
		Kind:      KindReview,
		ID:        r.ID(),
		OwnerID:   r.OwnerID(),
		CreatedAt: r.CreatedAt(),
		Review:    r,
	}, nil
}

// Sort orders items newest first. Items sharing a creation time are
// ordered with reviews before tickets, then by descending ID, so the
// feed is deterministic across requests.
func Sort(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind == KindReview
		}
		return a.ID > b.ID
	})
}
