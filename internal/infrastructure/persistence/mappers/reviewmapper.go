package mappers

import (
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
)

// ReviewMapper handles the conversion between domain entities and persistence models
type ReviewMapper interface {
	ToEntity(model *models.ReviewModel) (*review.Review, error)
	ToModel(entity *review.Review) *models.ReviewModel
	ToEntities(models []*models.ReviewModel) ([]*review.Review, error)
}

type reviewMapper struct{}

// NewReviewMapper creates a new review mapper
func NewReviewMapper() ReviewMapper {
	return &reviewMapper{}
}

func (m *reviewMapper) ToEntity(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, nil
	}

	return review.ReconstructReview(
		model.ID,
		model.SID,
		model.UserID,
		model.ProductID,
		model.Rating,
		model.Title,
		model.Comment,
		review.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *reviewMapper) ToModel(entity *review.Review) *models.ReviewModel {
	if entity == nil {
		return nil
	}

	return &models.ReviewModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		ProductID: entity.ProductID(),
		Rating:    entity.Rating(),
		Title:     entity.Title(),
		Comment:   entity.Comment(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *reviewMapper) ToEntities(reviewModels []*models.ReviewModel) ([]*review.Review, error) {
	entities := make([]*review.Review, 0, len(reviewModels))
	for _, model := range reviewModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
