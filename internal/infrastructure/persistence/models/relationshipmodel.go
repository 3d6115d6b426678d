package models

type FollowModel struct {
	ID         uint  `gorm:"primaryKey"`
	FollowerID uint  `gorm:"not null;uniqueIndex:idx_follows_pair;index"`
	FollowedID uint  `gorm:"not null;uniqueIndex:idx_follows_pair;index"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (FollowModel) TableName() string {
	return "follows"
}

type BlockModel struct {
	ID        uint  `gorm:"primaryKey"`
	BlockerID uint  `gorm:"not null;uniqueIndex:idx_blocks_pair;index"`
	BlockedID uint  `gorm:"not null;uniqueIndex:idx_blocks_pair;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (BlockModel) TableName() string {
	return "blocks"
}
