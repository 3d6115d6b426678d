package usecases

import (
	"context"
	"strings"

	userdto "revu/internal/application/user/dto"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserUseCase verifies credentials and issues a token pair. It
// returns the same generic error for unknown users and bad passwords.
type LoginUserUseCase struct {
	userRepo    user.UserRepository
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*AuthResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	account, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	pair, err := uc.tokenIssuer.Generate(account.ID(), account.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &AuthResult{
		User: userdto.UserDTO{
			ID:        account.ID(),
			Username:  account.Username(),
			Email:     account.Email(),
			CreatedAt: account.CreatedAt(),
		},
		Token: userdto.TokenDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
