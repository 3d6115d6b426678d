package mappers

import (
	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/biztime"
)

// ReviewMapper handles the conversion between review domain entities and persistence models.
type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
	RequestToModel(rr *review.ReviewRequest) *models.ReviewRequestModel
	RequestToDomain(model *models.ReviewRequestModel) (*review.ReviewRequest, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		OwnerID:   r.OwnerID(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	return review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.Rating,
		model.Headline,
		model.Body,
		model.OwnerID,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *ReviewMapperImpl) RequestToModel(rr *review.ReviewRequest) *models.ReviewRequestModel {
	return &models.ReviewRequestModel{
		ID:              rr.ID(),
		TicketID:        rr.TicketID(),
		RequesterID:     rr.RequesterID(),
		RequestedUserID: rr.RequestedUserID(),
		CreatedAt:       rr.CreatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) RequestToDomain(model *models.ReviewRequestModel) (*review.ReviewRequest, error) {
	return review.ReconstructReviewRequest(
		model.ID,
		model.TicketID,
		model.RequesterID,
		model.RequestedUserID,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
