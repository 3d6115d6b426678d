package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type FollowUserCommand struct {
	ActorID      uint
	TargetUserID uint
}

type FollowUserResult struct {
	Created bool
}

// FollowUserUseCase creates a follow edge from the actor to the target.
// Following someone already followed is a no-op success.
type FollowUserUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewFollowUserUseCase(
	relationshipRepo relationship.RelationshipRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *FollowUserUseCase {
	return &FollowUserUseCase{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	uc.logger.Infow("executing follow user use case", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("target user ID is required")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, errors.NewInvalidOperationError("cannot follow yourself")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.TargetUserID); err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	edge, err := relationship.NewFollowEdge(cmd.ActorID, cmd.TargetUserID)
	if err != nil {
		return nil, errors.NewInvalidOperationError(err.Error())
	}

	created, err := uc.relationshipRepo.CreateFollow(ctx, edge)
	if err != nil {
		uc.logger.Errorw("failed to create follow edge", "error", err)
		return nil, errors.NewInternalError("failed to follow user", err.Error())
	}

	uc.logger.Infow("follow completed", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID, "created", created)

	return &FollowUserResult{Created: created}, nil
}
