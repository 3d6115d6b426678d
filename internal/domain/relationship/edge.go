package relationship

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

// FollowEdge is a directed follow relation from one user to another.
type FollowEdge struct {
	id         uint
	followerID uint
	followedID uint
	createdAt  time.Time
}

func NewFollowEdge(followerID, followedID uint) (*FollowEdge, error) {
	if followerID == 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	if followedID == 0 {
		return nil, fmt.Errorf("followed ID is required")
	}
	if followerID == followedID {
		return nil, fmt.Errorf("cannot follow yourself")
	}

	return &FollowEdge{
		followerID: followerID,
		followedID: followedID,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructFollowEdge(id, followerID, followedID uint, createdAt time.Time) (*FollowEdge, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow edge ID cannot be zero")
	}
	if followerID == 0 || followedID == 0 {
		return nil, fmt.Errorf("follow edge endpoints are required")
	}

	return &FollowEdge{
		id:         id,
		followerID: followerID,
		followedID: followedID,
		createdAt:  createdAt,
	}, nil
}

func (e *FollowEdge) ID() uint {
	return e.id
}

func (e *FollowEdge) FollowerID() uint {
	return e.followerID
}

func (e *FollowEdge) FollowedID() uint {
	return e.followedID
}

func (e *FollowEdge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *FollowEdge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("follow edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow edge ID cannot be zero")
	}
	e.id = id
	return nil
}

// BlockEdge is a directed block relation from one user to another.
// A block suppresses the blocked user's content from the blocker's feed.
type BlockEdge struct {
	id        uint
	blockerID uint
	blockedID uint
	createdAt time.Time
}

func NewBlockEdge(blockerID, blockedID uint) (*BlockEdge, error) {
	if blockerID == 0 {
		return nil, fmt.Errorf("blocker ID is required")
	}
	if blockedID == 0 {
		return nil, fmt.Errorf("blocked ID is required")
	}
	if blockerID == blockedID {
		return nil, fmt.Errorf("cannot block yourself")
	}

	return &BlockEdge{
		blockerID: blockerID,
		blockedID: blockedID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructBlockEdge(id, blockerID, blockedID uint, createdAt time.Time) (*BlockEdge, error) {
	if id == 0 {
		return nil, fmt.Errorf("block edge ID cannot be zero")
	}
	if blockerID == 0 || blockedID == 0 {
		return nil, fmt.Errorf("block edge endpoints are required")
	}

	return &BlockEdge{
		id:        id,
		blockerID: blockerID,
		blockedID: blockedID,
		createdAt: createdAt,
	}, nil
}

func (e *BlockEdge) ID() uint {
	return e.id
}

func (e *BlockEdge) BlockerID() uint {
	return e.blockerID
}

func (e *BlockEdge) BlockedID() uint {
	return e.blockedID
}

func (e *BlockEdge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *BlockEdge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("block edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("block edge ID cannot be zero")
	}
	e.id = id
	return nil
}
