package usecases

import (
	"context"
	"fmt"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/infrastructure/auth"
	"revu/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, fmt.Errorf("user not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username string) (*auth.TokenPair, error)
	RefreshFunc  func(refreshToken string) (*auth.TokenPair, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username string) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenIssuer) Refresh(refreshToken string) (*auth.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &auth.TokenPair{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 900}, nil
}

type mockRoleGranter struct {
	GrantDefaultRoleFunc func(userID uint) error
}

func (m *mockRoleGranter) GrantDefaultRole(userID uint) error {
	if m.GrantDefaultRoleFunc != nil {
		return m.GrantDefaultRoleFunc(userID)
	}
	return nil
}

type mockRelationshipRepository struct {
	ListFollowersFunc func(ctx context.Context, userID uint) ([]uint, error)
	ListFollowingFunc func(ctx context.Context, userID uint) ([]uint, error)
	IsFollowingFunc   func(ctx context.Context, followerID, followedID uint) (bool, error)
	IsBlockedFunc     func(ctx context.Context, blockerID, blockedID uint) (bool, error)
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
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRelationshipRepository) ListBlocked(ctx context.Context, userID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockRelationshipRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	if m.IsFollowingFunc != nil {
		return m.IsFollowingFunc(ctx, followerID, followedID)
	}
	return false, nil
}

func (m *mockRelationshipRepository) IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	if m.IsBlockedFunc != nil {
		return m.IsBlockedFunc(ctx, blockerID, blockedID)
	}
	return false, nil
}
