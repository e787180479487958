package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	vo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between domain entities and persistence models
type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToModel(entity *product.Product) (*models.ProductModel, error)
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)

	VersionToEntity(model *models.ProductVersionModel) (*product.Version, error)
	VersionToModel(entity *product.Version) *models.ProductVersionModel
	VersionsToEntities(models []*models.ProductVersionModel) ([]*product.Version, error)

	FileToEntity(model *models.SequenceFileModel) (*product.SequenceFile, error)
	FileToModel(entity *product.SequenceFile) *models.SequenceFileModel
	FilesToEntities(models []*models.SequenceFileModel) ([]*product.SequenceFile, error)
}

type productMapper struct{}

// NewProductMapper creates a new product mapper
func NewProductMapper() ProductMapper {
	return &productMapper{}
}

func (m *productMapper) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	slug, err := vo.NewSlug(model.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to create slug value object: %w", err)
	}

	summary := product.RatingSummary{
		AverageRating: model.AverageRating,
		ReviewCount:   model.ReviewCount,
	}
	if len(model.RatingDist) > 0 {
		if err := json.Unmarshal(model.RatingDist, &summary.Distribution); err != nil {
			return nil, fmt.Errorf("failed to decode rating distribution: %w", err)
		}
	}

	return product.ReconstructProduct(
		model.ID,
		model.SID,
		model.SellerID,
		model.Title,
		slug,
		model.Description,
		model.Category,
		model.PriceCents,
		vo.Status(model.Status),
		summary,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *productMapper) ToModel(entity *product.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	rating := entity.Rating()
	dist, err := json.Marshal(rating.Distribution)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rating distribution: %w", err)
	}

	return &models.ProductModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		SellerID:      entity.SellerID(),
		Title:         entity.Title(),
		Slug:          entity.Slug().String(),
		Description:   entity.Description(),
		Category:      entity.Category(),
		PriceCents:    entity.PriceCents(),
		Status:        entity.Status().String(),
		AverageRating: rating.AverageRating,
		ReviewCount:   rating.ReviewCount,
		RatingDist:    dist,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *productMapper) ToEntities(productModels []*models.ProductModel) ([]*product.Product, error) {
	entities := make([]*product.Product, 0, len(productModels))
	for _, model := range productModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *productMapper) VersionToEntity(model *models.ProductVersionModel) (*product.Version, error) {
	if model == nil {
		return nil, nil
	}
	return product.ReconstructVersion(model.ID, model.SID, model.ProductID, model.Label, model.Changelog, model.CreatedAt)
}

func (m *productMapper) VersionToModel(entity *product.Version) *models.ProductVersionModel {
	if entity == nil {
		return nil
	}
	return &models.ProductVersionModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		ProductID: entity.ProductID(),
		Label:     entity.Label(),
		Changelog: entity.Changelog(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *productMapper) VersionsToEntities(versionModels []*models.ProductVersionModel) ([]*product.Version, error) {
	entities := make([]*product.Version, 0, len(versionModels))
	for _, model := range versionModels {
		entity, err := m.VersionToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *productMapper) FileToEntity(model *models.SequenceFileModel) (*product.SequenceFile, error) {
	if model == nil {
		return nil, nil
	}
	return product.ReconstructSequenceFile(
		model.ID,
		model.SID,
		model.VersionID,
		model.FileName,
		model.StorageKey,
		model.SizeBytes,
		model.Checksum,
		model.CreatedAt,
	)
}

func (m *productMapper) FileToModel(entity *product.SequenceFile) *models.SequenceFileModel {
	if entity == nil {
		return nil
	}
	return &models.SequenceFileModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		VersionID:  entity.VersionID(),
		FileName:   entity.FileName(),
		StorageKey: entity.StorageKey(),
		SizeBytes:  entity.SizeBytes(),
		Checksum:   entity.Checksum(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *productMapper) FilesToEntities(fileModels []*models.SequenceFileModel) ([]*product.SequenceFile, error) {
	entities := make([]*product.SequenceFile, 0, len(fileModels))
	for _, model := range fileModels {
		entity, err := m.FileToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
