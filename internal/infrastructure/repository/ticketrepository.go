package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/ticket"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	db "revu/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"image":       model.Image,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by owner: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) GetByOwners(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	if len(ownerIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by owners: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket (id=%d): %w", modelList[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
