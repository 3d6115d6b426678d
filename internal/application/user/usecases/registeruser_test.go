package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revu/internal/domain/user"
	"revu/internal/infrastructure/auth"
	"revu/internal/shared/errors"
)

func mustUser(t *testing.T, id uint, username, passwordHash string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, "", passwordHash, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("creates account and issues tokens", func(t *testing.T) {
		var savedHash string
		var grantedTo uint
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				savedHash = u.PasswordHash()
				return u.SetID(7)
			},
		}
		granter := &mockRoleGranter{
			GrantDefaultRoleFunc: func(userID uint) error {
				grantedTo = userID
				return nil
			},
		}

		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, granter, testLogger())
		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			Username: "alice",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), result.User.ID)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "hashed:s3cret-pass", savedHash)
		assert.Equal(t, uint(7), grantedTo)
		assert.Equal(t, "access", result.Token.AccessToken)
		assert.Equal(t, "refresh", result.Token.RefreshToken)
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return true, nil
			},
		}
		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockRoleGranter{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{Username: "alice", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("duplicate insert maps to conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return fmt.Errorf("Error 1062: Duplicate entry 'alice' for key 'idx_username'")
			},
		}
		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockRoleGranter{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{Username: "alice", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockRoleGranter{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{Username: "alice", Password: "short"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid username rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockRoleGranter{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{Username: "a b", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("role grant failure does not fail registration", func(t *testing.T) {
		granter := &mockRoleGranter{
			GrantDefaultRoleFunc: func(userID uint) error {
				return fmt.Errorf("policy store unavailable")
			},
		}
		uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, granter, testLogger())
		result, err := uc.Execute(context.Background(), RegisterUserCommand{Username: "alice", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token.AccessToken)
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return mustUser(t, 3, "alice", "hashed:s3cret-pass"), nil
			},
		}
		uc := NewLoginUserUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())
		result, err := uc.Execute(context.Background(), LoginUserCommand{Username: "alice", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), result.User.ID)
		assert.Equal(t, "access", result.Token.AccessToken)
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return mustUser(t, 3, "alice", "hashed:other"), nil
			},
		}
		uc := NewLoginUserUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginUserCommand{Username: "alice", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("unknown user gets same error as wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginUserCommand{Username: "ghost", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
		assert.Contains(t, err.Error(), "invalid username or password")
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		uc := NewLoginUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginUserCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("rotates token pair", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(&mockTokenIssuer{}, testLogger())
		result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "access2", result.Token.AccessToken)
		assert.Equal(t, "refresh2", result.Token.RefreshToken)
	})

	t.Run("invalid token unauthorized", func(t *testing.T) {
		issuer := &mockTokenIssuer{
			RefreshFunc: func(refreshToken string) (*auth.TokenPair, error) {
				return nil, fmt.Errorf("token is expired")
			},
		}
		uc := NewRefreshTokenUseCase(issuer, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "stale"})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("empty token rejected", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(&mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	t.Run("profile with relationship counts", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return mustUser(t, 5, "bob", "hash"), nil
			},
		}
		relRepo := &mockRelationshipRepository{
			ListFollowersFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				return []uint{1, 2, 3}, nil
			},
			ListFollowingFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				return []uint{9}, nil
			},
			IsFollowingFunc: func(ctx context.Context, followerID, followedID uint) (bool, error) {
				return followerID == 1 && followedID == 5, nil
			},
		}

		uc := NewGetProfileUseCase(userRepo, relRepo, testLogger())
		result, err := uc.Execute(context.Background(), GetProfileQuery{Username: "bob", ViewerID: 1})
		require.NoError(t, err)
		assert.Equal(t, "bob", result.User.Username)
		assert.Equal(t, 3, result.Followers)
		assert.Equal(t, 1, result.Following)
		assert.True(t, result.IsFollowing)
		assert.False(t, result.IsBlocked)
	})

	t.Run("unknown user not found", func(t *testing.T) {
		uc := NewGetProfileUseCase(&mockUserRepository{}, &mockRelationshipRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), GetProfileQuery{UserID: 42})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("missing identifier rejected", func(t *testing.T) {
		uc := NewGetProfileUseCase(&mockUserRepository{}, &mockRelationshipRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), GetProfileQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
