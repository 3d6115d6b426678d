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

type ReviewRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRequestRepository(db *gorm.DB) *ReviewRequestRepository {
	return &ReviewRequestRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRequestRepository) Save(ctx context.Context, req *review.ReviewRequest) error {
	model := r.mapper.RequestToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ReviewRequestRepository) GetByRequester(ctx context.Context, requesterID uint) ([]*review.ReviewRequest, error) {
	return r.findBy(ctx, "requester_id = ?", requesterID)
}

func (r *ReviewRequestRepository) GetByRequestedUser(ctx context.Context, requestedUserID uint) ([]*review.ReviewRequest, error) {
	return r.findBy(ctx, "requested_user_id = ?", requestedUserID)
}

func (r *ReviewRequestRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReviewRequestModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete review requests for ticket: %w", err)
	}
	return nil
}

func (r *ReviewRequestRepository) findBy(ctx context.Context, cond string, arg uint) ([]*review.ReviewRequest, error) {
	var modelList []models.ReviewRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(cond, arg).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list review requests: %w", err)
	}

	requests := make([]*review.ReviewRequest, 0, len(modelList))
	for i := range modelList {
		req, err := r.mapper.RequestToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map review request (id=%d): %w", modelList[i].ID, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
