package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
)

func existingUser(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.NewUser("someone", "", "$2a$12$hash")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestFollowUserUseCase_Execute(t *testing.T) {
	t.Run("creates follow edge", func(t *testing.T) {
		var captured *relationship.FollowEdge
		repo := &mockRelationshipRepository{
			CreateFollowFunc: func(ctx context.Context, edge *relationship.FollowEdge) (bool, error) {
				captured = edge
				return true, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existingUser(t, id), nil
			},
		}

		uc := NewFollowUserUseCase(repo, userRepo, testLogger())
		result, err := uc.Execute(context.Background(), FollowUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.True(t, result.Created)
		require.NotNil(t, captured)
		assert.Equal(t, uint(1), captured.FollowerID())
		assert.Equal(t, uint(2), captured.FollowedID())
	})

	t.Run("following twice is a no-op success", func(t *testing.T) {
		repo := &mockRelationshipRepository{
			CreateFollowFunc: func(ctx context.Context, edge *relationship.FollowEdge) (bool, error) {
				return false, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existingUser(t, id), nil
			},
		}

		uc := NewFollowUserUseCase(repo, userRepo, testLogger())
		result, err := uc.Execute(context.Background(), FollowUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.False(t, result.Created)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		uc := NewFollowUserUseCase(&mockRelationshipRepository{}, &mockUserRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), FollowUserCommand{ActorID: 1, TargetUserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidOperationError(err))
	})

	t.Run("target must exist", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, fmt.Errorf("user not found")
			},
		}

		uc := NewFollowUserUseCase(&mockRelationshipRepository{}, userRepo, testLogger())
		_, err := uc.Execute(context.Background(), FollowUserCommand{ActorID: 1, TargetUserID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUnfollowUserUseCase_Execute(t *testing.T) {
	t.Run("removes edge", func(t *testing.T) {
		repo := &mockRelationshipRepository{
			DeleteFollowFunc: func(ctx context.Context, followerID, followedID uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewUnfollowUserUseCase(repo, testLogger())
		result, err := uc.Execute(context.Background(), UnfollowUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.True(t, result.Removed)
	})

	t.Run("unfollowing a stranger is a no-op success", func(t *testing.T) {
		repo := &mockRelationshipRepository{
			DeleteFollowFunc: func(ctx context.Context, followerID, followedID uint) (bool, error) {
				return false, nil
			},
		}

		uc := NewUnfollowUserUseCase(repo, testLogger())
		result, err := uc.Execute(context.Background(), UnfollowUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.False(t, result.Removed)
	})

	t.Run("self unfollow rejected", func(t *testing.T) {
		uc := NewUnfollowUserUseCase(&mockRelationshipRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), UnfollowUserCommand{ActorID: 1, TargetUserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidOperationError(err))
	})
}

func TestBlockUserUseCase_Execute(t *testing.T) {
	t.Run("creates block edge", func(t *testing.T) {
		var captured *relationship.BlockEdge
		repo := &mockRelationshipRepository{
			CreateBlockFunc: func(ctx context.Context, edge *relationship.BlockEdge) (bool, error) {
				captured = edge
				return true, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existingUser(t, id), nil
			},
		}

		uc := NewBlockUserUseCase(repo, userRepo, testLogger())
		result, err := uc.Execute(context.Background(), BlockUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.True(t, result.Created)
		require.NotNil(t, captured)
		assert.Equal(t, uint(1), captured.BlockerID())
		assert.Equal(t, uint(2), captured.BlockedID())
	})

	t.Run("blocking twice is a no-op success", func(t *testing.T) {
		repo := &mockRelationshipRepository{
			CreateBlockFunc: func(ctx context.Context, edge *relationship.BlockEdge) (bool, error) {
				return false, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existingUser(t, id), nil
			},
		}

		uc := NewBlockUserUseCase(repo, userRepo, testLogger())
		result, err := uc.Execute(context.Background(), BlockUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.False(t, result.Created)
	})

	t.Run("self block rejected", func(t *testing.T) {
		uc := NewBlockUserUseCase(&mockRelationshipRepository{}, &mockUserRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), BlockUserCommand{ActorID: 1, TargetUserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidOperationError(err))
	})
}

func TestUnblockUserUseCase_Execute(t *testing.T) {
	t.Run("removes edge", func(t *testing.T) {
		repo := &mockRelationshipRepository{
			DeleteBlockFunc: func(ctx context.Context, blockerID, blockedID uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewUnblockUserUseCase(repo, testLogger())
		result, err := uc.Execute(context.Background(), UnblockUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.True(t, result.Removed)
	})

	t.Run("self unblock rejected", func(t *testing.T) {
		uc := NewUnblockUserUseCase(&mockRelationshipRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), UnblockUserCommand{ActorID: 1, TargetUserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidOperationError(err))
	})
}

func TestListRelationshipsUseCase_Execute(t *testing.T) {
	repo := &mockRelationshipRepository{
		ListFollowingFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{2, 3}, nil
		},
		ListFollowersFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{3}, nil
		},
		ListBlockedFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{4}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			var users []*user.User
			for _, id := range ids {
				u, err := user.NewUser(fmt.Sprintf("user%d", id), "", "$2a$12$hash")
				require.NoError(t, err)
				require.NoError(t, u.SetID(id))
				users = append(users, u)
			}
			return users, nil
		},
	}

	uc := NewListRelationshipsUseCase(repo, userRepo, testLogger())
	result, err := uc.Execute(context.Background(), ListRelationshipsQuery{UserID: 1})

	require.NoError(t, err)
	require.Len(t, result.Following, 2)
	assert.Equal(t, "user2", result.Following[0].Username)
	require.Len(t, result.Followers, 1)
	assert.Equal(t, uint(3), result.Followers[0].ID)
	require.Len(t, result.Blocked, 1)
	assert.Equal(t, uint(4), result.Blocked[0].ID)
}
