package usecases

import (
	"context"
	"strings"

	userdto "revu/internal/application/user/dto"
	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

// GetProfileQuery looks a user up by ID or by username. Exactly one
// must be set. ViewerID, when non-zero, enables the relationship flags.
type GetProfileQuery struct {
	UserID   uint
	Username string
	ViewerID uint
}

type ProfileResult struct {
	User      userdto.UserDTO
	Followers int
	Following int
	// Relationship of the viewer to this profile.
	IsFollowing bool
	IsBlocked   bool
}

type GetProfileUseCase struct {
	userRepo         user.UserRepository
	relationshipRepo relationship.RelationshipRepository
	logger           logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.UserRepository,
	relationshipRepo relationship.RelationshipRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:         userRepo,
		relationshipRepo: relationshipRepo,
		logger:           logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileResult, error) {
	username := strings.TrimSpace(query.Username)
	if query.UserID == 0 && username == "" {
		return nil, errors.NewValidationError("user ID or username is required")
	}

	var (
		account *user.User
		err     error
	)
	if query.UserID != 0 {
		account, err = uc.userRepo.GetByID(ctx, query.UserID)
	} else {
		account, err = uc.userRepo.GetByUsername(ctx, username)
	}
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	followers, err := uc.relationshipRepo.ListFollowers(ctx, account.ID())
	if err != nil {
		uc.logger.Errorw("failed to list followers", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load profile", err.Error())
	}
	following, err := uc.relationshipRepo.ListFollowing(ctx, account.ID())
	if err != nil {
		uc.logger.Errorw("failed to list following", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load profile", err.Error())
	}

	result := &ProfileResult{
		User: userdto.UserDTO{
			ID:        account.ID(),
			Username:  account.Username(),
			Email:     account.Email(),
			CreatedAt: account.CreatedAt(),
		},
		Followers: len(followers),
		Following: len(following),
	}

	if query.ViewerID != 0 && query.ViewerID != account.ID() {
		isFollowing, err := uc.relationshipRepo.IsFollowing(ctx, query.ViewerID, account.ID())
		if err == nil {
			result.IsFollowing = isFollowing
		}
		isBlocked, err := uc.relationshipRepo.IsBlocked(ctx, query.ViewerID, account.ID())
		if err == nil {
			result.IsBlocked = isBlocked
		}
	}

	return result, nil
}
