package review

import "context"

// ReviewFilter describes optional listing criteria for reviews.
type ReviewFilter struct {
	OwnerID  *uint
	TicketID *uint
	Page     int
	PageSize int
}

// ReviewRepository defines the persistence port for reviews.
type ReviewRepository interface {
	Save(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]*Review, error)
	GetByOwners(ctx context.Context, ownerIDs []uint) ([]*Review, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Review, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	List(ctx context.Context, filter ReviewFilter) ([]*Review, int64, error)
}

// ReviewRequestRepository defines the persistence port for review requests.
type ReviewRequestRepository interface {
	Save(ctx context.Context, request *ReviewRequest) error
	GetByRequester(ctx context.Context, requesterID uint) ([]*ReviewRequest, error)
	GetByRequestedUser(ctx context.Context, requestedUserID uint) ([]*ReviewRequest, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
