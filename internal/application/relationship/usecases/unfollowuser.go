package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UnfollowUserCommand struct {
	ActorID      uint
	TargetUserID uint
}

type UnfollowUserResult struct {
	Removed bool
}

// UnfollowUserUseCase removes a follow edge. Unfollowing someone not
// followed is a no-op success.
type UnfollowUserUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	logger           logger.Interface
}

func NewUnfollowUserUseCase(
	relationshipRepo relationship.RelationshipRepository,
	logger logger.Interface,
) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		relationshipRepo: relationshipRepo,
		logger:           logger,
	}
}

func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error) {
	uc.logger.Infow("executing unfollow user use case", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("target user ID is required")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, errors.NewInvalidOperationError("cannot unfollow yourself")
	}

	removed, err := uc.relationshipRepo.DeleteFollow(ctx, cmd.ActorID, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to delete follow edge", "error", err)
		return nil, errors.NewInternalError("failed to unfollow user", err.Error())
	}

	return &UnfollowUserResult{Removed: removed}, nil
}
