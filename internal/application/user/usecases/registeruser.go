package usecases

import (
	"context"
	"strings"

	userdto "revu/internal/application/user/dto"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned by registration and login: the account plus a
// fresh token pair.
type AuthResult struct {
	User  userdto.UserDTO
	Token userdto.TokenDTO
}

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// RegisterUserUseCase creates a new account, grants it the default
// role and issues an initial token pair.
type RegisterUserUseCase struct {
	userRepo    user.UserRepository
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
	roleGranter RoleGranter
	logger      logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	roleGranter RoleGranter,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		roleGranter: roleGranter,
		logger:      logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(cmd.Username)

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username availability", "error", err)
		return nil, errors.NewInternalError("failed to register user", err.Error())
	}
	if exists {
		return nil, errors.NewConflictError("username is already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user", err.Error())
	}

	account, err := user.NewUser(username, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username is already taken")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to register user", err.Error())
	}

	if err := uc.roleGranter.GrantDefaultRole(account.ID()); err != nil {
		// The account exists; role assignment can be repaired out of band.
		uc.logger.Errorw("failed to grant default role", "user_id", account.ID(), "error", err)
	}

	pair, err := uc.tokenIssuer.Generate(account.ID(), account.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register user", err.Error())
	}

	uc.logger.Infow("user registered", "user_id", account.ID(), "username", account.Username())

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

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if strings.TrimSpace(cmd.Username) == "" {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > maxPasswordLength {
		return errors.NewValidationError("password must not exceed 72 characters")
	}
	return nil
}
