package usecases

import (
	"context"

	userdto "revu/internal/application/user/dto"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	Token userdto.TokenDTO
}

// RefreshTokenUseCase exchanges a valid refresh token for a new pair.
// The old refresh token is superseded by the rotated one.
type RefreshTokenUseCase struct {
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewRefreshTokenUseCase(tokenIssuer TokenIssuer, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokenIssuer: tokenIssuer, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	pair, err := uc.tokenIssuer.Refresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		Token: userdto.TokenDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
