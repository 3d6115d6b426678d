package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UnblockUserCommand struct {
	ActorID      uint
	TargetUserID uint
}

type UnblockUserResult struct {
	Removed bool
}

// UnblockUserUseCase removes a block edge. Unblocking someone not
// blocked is a no-op success.
type UnblockUserUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	logger           logger.Interface
}

func NewUnblockUserUseCase(
	relationshipRepo relationship.RelationshipRepository,
	logger logger.Interface,
) *UnblockUserUseCase {
	return &UnblockUserUseCase{
		relationshipRepo: relationshipRepo,
		logger:           logger,
	}
}

func (uc *UnblockUserUseCase) Execute(ctx context.Context, cmd UnblockUserCommand) (*UnblockUserResult, error) {
	uc.logger.Infow("executing unblock user use case", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("target user ID is required")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, errors.NewInvalidOperationError("cannot unblock yourself")
	}

	removed, err := uc.relationshipRepo.DeleteBlock(ctx, cmd.ActorID, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to delete block edge", "error", err)
		return nil, errors.NewInternalError("failed to unblock user", err.Error())
	}

	return &UnblockUserResult{Removed: removed}, nil
}
