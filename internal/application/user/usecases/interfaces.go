package usecases

import (
	"context"

	"revu/internal/infrastructure/auth"
)

// PasswordHasher abstracts password hashing so use cases stay
// independent of the bcrypt implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues and refreshes token pairs.
type TokenIssuer interface {
	Generate(userID uint, username string) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// RoleGranter assigns the default role to newly registered users.
type RoleGranter interface {
	GrantDefaultRole(userID uint) error
}

// RegisterUserExecutor defines the registration contract.
type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*AuthResult, error)
}

// LoginUserExecutor defines the login contract.
type LoginUserExecutor interface {
	Execute(ctx context.Context, cmd LoginUserCommand) (*AuthResult, error)
}

// RefreshTokenExecutor defines the token refresh contract.
type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

// GetProfileExecutor defines the profile lookup contract.
type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*ProfileResult, error)
}
