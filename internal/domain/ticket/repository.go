package ticket

import (
	"context"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
	GetByOwners(ctx context.Context, ownerIDs []uint) ([]*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	OwnerID  *uint
	Page     int
	PageSize int
}
