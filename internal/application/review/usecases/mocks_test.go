package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc    func(ctx context.Context, r *review.Review) error
	UpdateFunc  func(ctx context.Context, r *review.Review) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*review.Review, error)
	ListFunc    func(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
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
	return nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockReviewRequestRepository struct {
	SaveFunc func(ctx context.Context, req *review.ReviewRequest) error
}

func (m *mockReviewRequestRepository) Save(ctx context.Context, req *review.ReviewRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockReviewRequestRepository) GetByRequester(ctx context.Context, requesterID uint) ([]*review.ReviewRequest, error) {
	return nil, nil
}

func (m *mockReviewRequestRepository) GetByRequestedUser(ctx context.Context, requestedUserID uint) ([]*review.ReviewRequest, error) {
	return nil, nil
}

func (m *mockReviewRequestRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

type mockUserRepository struct {
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
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
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
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

type mockEmailSender struct {
	SendReviewRequestEmailFunc func(to, requesterName, ticketTitle string) error
}

func (m *mockEmailSender) SendReviewRequestEmail(to, requesterName, ticketTitle string) error {
	if m.SendReviewRequestEmailFunc != nil {
		return m.SendReviewRequestEmailFunc(to, requesterName, ticketTitle)
	}
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
