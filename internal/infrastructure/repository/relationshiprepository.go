package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/relationship"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	db "revu/internal/shared/db"
	"revu/internal/shared/errors"
)

type RelationshipRepository struct {
	db     *gorm.DB
	mapper mappers.RelationshipMapper
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{
		db:     db,
		mapper: mappers.NewRelationshipMapper(),
	}
}

// CreateFollow inserts a follow edge. A duplicate edge is not an error;
// the unique index on (follower_id, followed_id) makes repeats no-ops.
func (r *RelationshipRepository) CreateFollow(ctx context.Context, edge *relationship.FollowEdge) (bool, error) {
	model := r.mapper.FollowToModel(edge)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create follow edge: %w", err)
	}

	if err := edge.SetID(model.ID); err != nil {
		return false, err
	}

	return true, nil
}

func (r *RelationshipRepository) DeleteFollow(ctx context.Context, followerID, followedID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.FollowModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// CreateBlock inserts a block edge with the same idempotency contract
// as CreateFollow.
func (r *RelationshipRepository) CreateBlock(ctx context.Context, edge *relationship.BlockEdge) (bool, error) {
	model := r.mapper.BlockToModel(edge)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create block edge: %w", err)
	}

	if err := edge.SetID(model.ID); err != nil {
		return false, err
	}

	return true, nil
}

func (r *RelationshipRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.BlockModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete block edge: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *RelationshipRepository) ListFollowing(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ?", userID).
		Order("id").
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return ids, nil
}

func (r *RelationshipRepository) ListFollowers(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("followed_id = ?", userID).
		Order("id").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return ids, nil
}

func (r *RelationshipRepository) ListBlocked(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.BlockModel{}).
		Where("blocker_id = ?", userID).
		Order("id").
		Pluck("blocked_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}

	return ids, nil
}

func (r *RelationshipRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return count > 0, nil
}

func (r *RelationshipRepository) IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.BlockModel{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check block edge: %w", err)
	}

	return count > 0, nil
}
