package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type BlockUserCommand struct {
	ActorID      uint
	TargetUserID uint
}

type BlockUserResult struct {
	Created bool
}

// BlockUserUseCase creates a block edge from the actor to the target.
// Blocking an already blocked user is a no-op success. Blocking does
// not remove an existing follow edge; the block alone suppresses the
// blocked user's content from the actor's feed.
type BlockUserUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewBlockUserUseCase(
	relationshipRepo relationship.RelationshipRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *BlockUserUseCase {
	return &BlockUserUseCase{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *BlockUserUseCase) Execute(ctx context.Context, cmd BlockUserCommand) (*BlockUserResult, error) {
	uc.logger.Infow("executing block user use case", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("target user ID is required")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, errors.NewInvalidOperationError("cannot block yourself")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.TargetUserID); err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	edge, err := relationship.NewBlockEdge(cmd.ActorID, cmd.TargetUserID)
	if err != nil {
		return nil, errors.NewInvalidOperationError(err.Error())
	}

	created, err := uc.relationshipRepo.CreateBlock(ctx, edge)
	if err != nil {
		uc.logger.Errorw("failed to create block edge", "error", err)
		return nil, errors.NewInternalError("failed to block user", err.Error())
	}

	uc.logger.Infow("block completed", "actor_id", cmd.ActorID, "target_user_id", cmd.TargetUserID, "created", created)

	return &BlockUserResult{Created: created}, nil
}
