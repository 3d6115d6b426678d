package relationship

import "context"

// RelationshipRepository defines the persistence port for follow and
// block edges. Create methods report whether a new edge was written so
// callers can treat duplicates as idempotent no-ops; Delete methods
// report whether an edge existed.
type RelationshipRepository interface {
	CreateFollow(ctx context.Context, edge *FollowEdge) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followedID uint) (bool, error)
	CreateBlock(ctx context.Context, edge *BlockEdge) (bool, error)
	DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error)

	ListFollowing(ctx context.Context, userID uint) ([]uint, error)
	ListFollowers(ctx context.Context, userID uint) ([]uint, error)
	ListBlocked(ctx context.Context, userID uint) ([]uint, error)
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error)
}
