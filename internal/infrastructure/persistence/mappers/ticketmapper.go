package mappers

import (
	"revu/internal/domain/ticket"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Image:       t.Image(),
		OwnerID:     t.OwnerID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.Image,
		model.OwnerID,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
