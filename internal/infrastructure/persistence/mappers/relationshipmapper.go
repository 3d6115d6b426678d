package mappers

import (
	"revu/internal/domain/relationship"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/biztime"
)

// RelationshipMapper handles the conversion between follow/block edges
// and persistence models.
type RelationshipMapper interface {
	FollowToModel(e *relationship.FollowEdge) *models.FollowModel
	FollowToDomain(model *models.FollowModel) (*relationship.FollowEdge, error)
	BlockToModel(e *relationship.BlockEdge) *models.BlockModel
	BlockToDomain(model *models.BlockModel) (*relationship.BlockEdge, error)
}

type RelationshipMapperImpl struct{}

func NewRelationshipMapper() RelationshipMapper {
	return &RelationshipMapperImpl{}
}

func (m *RelationshipMapperImpl) FollowToModel(e *relationship.FollowEdge) *models.FollowModel {
	return &models.FollowModel{
		ID:         e.ID(),
		FollowerID: e.FollowerID(),
		FollowedID: e.FollowedID(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}
}

func (m *RelationshipMapperImpl) FollowToDomain(model *models.FollowModel) (*relationship.FollowEdge, error) {
	return relationship.ReconstructFollowEdge(
		model.ID,
		model.FollowerID,
		model.FollowedID,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}

func (m *RelationshipMapperImpl) BlockToModel(e *relationship.BlockEdge) *models.BlockModel {
	return &models.BlockModel{
		ID:        e.ID(),
		BlockerID: e.BlockerID(),
		BlockedID: e.BlockedID(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *RelationshipMapperImpl) BlockToDomain(model *models.BlockModel) (*relationship.BlockEdge, error) {
	return relationship.ReconstructBlockEdge(
		model.ID,
		model.BlockerID,
		model.BlockedID,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
