package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type mockRelationshipRepository struct {
	CreateFollowFunc  func(ctx context.Context, edge *relationship.FollowEdge) (bool, error)
	DeleteFollowFunc  func(ctx context.Context, followerID, followedID uint) (bool, error)
	CreateBlockFunc   func(ctx context.Context, edge *relationship.BlockEdge) (bool, error)
	DeleteBlockFunc   func(ctx context.Context, blockerID, blockedID uint) (bool, error)
	ListFollowingFunc func(ctx context.Context, userID uint) ([]uint, error)
	ListFollowersFunc func(ctx context.Context, userID uint) ([]uint, error)
	ListBlockedFunc   func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockRelationshipRepository) CreateFollow(ctx context.Context, edge *relationship.FollowEdge) (bool, error) {
	if m.CreateFollowFunc != nil {
		return m.CreateFollowFunc(ctx, edge)
	}
	return true, nil
}

func (m *mockRelationshipRepository) DeleteFollow(ctx context.Context, followerID, followedID uint) (bool, error) {
	if m.DeleteFollowFunc != nil {
		return m.DeleteFollowFunc(ctx, followerID, followedID)
	}
	return true, nil
}

func (m *mockRelationshipRepository) CreateBlock(ctx context.Context, edge *relationship.BlockEdge) (bool, error) {
	if m.CreateBlockFunc != nil {
		return m.CreateBlockFunc(ctx, edge)
	}
	return true, nil
}

func (m *mockRelationshipRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	if m.DeleteBlockFunc != nil {
		return m.DeleteBlockFunc(ctx, blockerID, blockedID)
	}
	return true, nil
}

func (m *mockRelationshipRepository) ListFollowing(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListFollowingFunc != nil {
		return m.ListFollowingFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRelationshipRepository) ListFollowers(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, userID)
	}
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

func testLogger() logger.Interface {
	return logger.NewLogger()
}
