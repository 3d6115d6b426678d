package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	db "revu/internal/shared/db"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	if err := rv.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"rating":     model.Rating,
			"headline":   model.Headline,
			"body":       model.Body,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("review not found")
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*review.Review, error) {
	var modelList []models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews by owner: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ReviewRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	if len(ownerIDs) == 0 {
		return []*review.Review{}, nil
	}

	var modelList []models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews by owners: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ReviewRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*review.Review, error) {
	var modelList []models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews by ticket: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews for ticket: %w", err)
	}
	return nil
}

func (r *ReviewRepository) List(
	ctx context.Context,
	filter review.ReviewFilter,
) ([]*review.Review, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReviewModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.TicketID != nil {
		query = query.Where("ticket_id = ?", *filter.TicketID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var modelList []models.ReviewModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewRepository) toDomainList(modelList []models.ReviewModel) ([]*review.Review, error) {
	reviews := make([]*review.Review, 0, len(modelList))
	for i := range modelList {
		rv, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map review (id=%d): %w", modelList[i].ID, err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}
