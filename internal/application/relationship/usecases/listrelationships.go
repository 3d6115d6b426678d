package usecases

import (
	"context"

	"revu/internal/domain/relationship"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type ListRelationshipsQuery struct {
	UserID uint
}

// RelatedUser is a compact user view used in relationship listings.
type RelatedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ListRelationshipsResult struct {
	Following []RelatedUser
	Followers []RelatedUser
	Blocked   []RelatedUser
}

// ListRelationshipsUseCase returns who a user follows, who follows
// them, and who they have blocked.
type ListRelationshipsUseCase struct {
	relationshipRepo relationship.RelationshipRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewListRelationshipsUseCase(
	relationshipRepo relationship.RelationshipRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListRelationshipsUseCase {
	return &ListRelationshipsUseCase{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ListRelationshipsUseCase) Execute(ctx context.Context, query ListRelationshipsQuery) (*ListRelationshipsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	followingIDs, err := uc.relationshipRepo.ListFollowing(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list following", err.Error())
	}

	followerIDs, err := uc.relationshipRepo.ListFollowers(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list followers", err.Error())
	}

	blockedIDs, err := uc.relationshipRepo.ListBlocked(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list blocked users", err.Error())
	}

	users, err := uc.resolveUsers(ctx, followingIDs, followerIDs, blockedIDs)
	if err != nil {
		return nil, err
	}

	return &ListRelationshipsResult{
		Following: pick(users, followingIDs),
		Followers: pick(users, followerIDs),
		Blocked:   pick(users, blockedIDs),
	}, nil
}

func (uc *ListRelationshipsUseCase) resolveUsers(ctx context.Context, idLists ...[]uint) (map[uint]RelatedUser, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for _, list := range idLists {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	resolved := make(map[uint]RelatedUser, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve related users", "error", err)
		return nil, errors.NewInternalError("failed to resolve users", err.Error())
	}

	for _, u := range users {
		resolved[u.ID()] = RelatedUser{ID: u.ID(), Username: u.Username()}
	}
	return resolved, nil
}

func pick(users map[uint]RelatedUser, ids []uint) []RelatedUser {
	out := make([]RelatedUser, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			out = append(out, u)
		}
	}
	return out
}
