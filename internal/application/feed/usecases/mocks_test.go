package usecases

import (
	"context"
	"fmt"

	"revu/internal/domain/relationship"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockRelationshipRepository struct {
	ListFollowingFunc func(ctx context.Context, userID uint) ([]uint, error)
	ListBlockedFunc   func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockRelationshipRepository) CreateFollow(ctx context.Context, edge *relationship.FollowEdge) (bool, error) {
	return false, fmt.Errorf("not implemented")
}

func (m *mockRelationshipRepository) DeleteFollow(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, fmt.Errorf("not implemented")
}

func (m *mockRelationshipRepository) CreateBlock(ctx context.Context, edge *relationship.BlockEdge) (bool, error) {
	return false, fmt.Errorf("not implemented")
}

func (m *mockRelationshipRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	return false, fmt.Errorf("not implemented")
}

func (m *mockRelationshipRepository) ListFollowing(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListFollowingFunc != nil {
		return m.ListFollowingFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRelationshipRepository) ListFollowers(ctx context.Context, userID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockRelationshipRepository) ListBlocked(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListBlockedFunc != nil {
		return m.ListBlockedFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRelationshipRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, nil
}

func (m *mockRelationshipRepository) IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	return false, nil
}

type mockTicketRepository struct {
	GetByOwnerFunc  func(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error)
	GetByOwnersFunc func(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return nil
}
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, fmt.Errorf("ticket not found")
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
	return nil, 0, nil
}

type mockReviewRepository struct {
	GetByOwnerFunc  func(ctx context.Context, ownerID uint) ([]*review.Review, error)
	GetByOwnersFunc func(ctx context.Context, ownerIDs []uint) ([]*review.Review, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error   { return nil }
func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error { return nil }
func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error          { return nil }
func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	return nil, fmt.Errorf("review not found")
}

func (m *mockReviewRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*review.Review, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockReviewRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	if m.GetByOwnersFunc != nil {
		return m.GetByOwnersFunc(ctx, ownerIDs)
	}
	return nil, nil
}

func (m *mockReviewRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*review.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error) {
	return nil, 0, nil
}

type mockReviewRequestRepository struct {
	GetByRequestedUserFunc func(ctx context.Context, requestedUserID uint) ([]*review.ReviewRequest, error)
}

func (m *mockReviewRequestRepository) Save(ctx context.Context, rr *review.ReviewRequest) error {
	return nil
}

func (m *mockReviewRequestRepository) GetByRequester(ctx context.Context, requesterID uint) ([]*review.ReviewRequest, error) {
	return nil, nil
}

func (m *mockReviewRequestRepository) GetByRequestedUser(ctx context.Context, requestedUserID uint) ([]*review.ReviewRequest, error) {
	if m.GetByRequestedUserFunc != nil {
		return m.GetByRequestedUserFunc(ctx, requestedUserID)
	}
	return nil, nil
}

func (m *mockReviewRequestRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

type mockUserRepository struct {
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, fmt.Errorf("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, fmt.Errorf("user not found")
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
