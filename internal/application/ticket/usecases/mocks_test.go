package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByOwnerFunc  func(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error)
	GetByOwnersFunc func(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	if m.GetByOwnersFunc != nil {
		return m.GetByOwnersFunc(ctx, ownerIDs)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockReviewRepository struct {
	SaveFunc             func(ctx context.Context, r *review.Review) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error) {
	return nil, 0, nil
}

type mockReviewRequestRepository struct {
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockReviewRequestRepository) Save(ctx context.Context, req *review.ReviewRequest) error {
	return nil
}

func (m *mockReviewRequestRepository) GetByRequester(ctx context.Context, requesterID uint) ([]*review.ReviewRequest, error) {
	return nil, nil
}

func (m *mockReviewRequestRepository) GetByRequestedUser(ctx context.Context, requestedUserID uint) ([]*review.ReviewRequest, error) {
	return nil, nil
}

func (m *mockReviewRequestRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

type mockAuthorizer struct {
	CanFunc func(ctx context.Context, userID uint, resource, action string) (bool, error)
}

func (m *mockAuthorizer) Can(ctx context.Context, userID uint, resource, action string) (bool, error) {
	if m.CanFunc != nil {
		return m.CanFunc(ctx, userID, resource, action)
	}
	return true, nil
}

type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
