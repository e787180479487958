package mappers

import (
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
)

// EntitlementMapper handles the conversion between domain entities and persistence models
type EntitlementMapper interface {
	ToEntity(model *models.EntitlementModel) (*entitlement.Entitlement, error)
	ToModel(entity *entitlement.Entitlement) *models.EntitlementModel
	ToEntities(models []*models.EntitlementModel) ([]*entitlement.Entitlement, error)

	TokenToEntity(model *models.DownloadTokenModel) (*entitlement.DownloadToken, error)
	TokenToModel(entity *entitlement.DownloadToken) *models.DownloadTokenModel
}

type entitlementMapper struct{}

// NewEntitlementMapper creates a new entitlement mapper
func NewEntitlementMapper() EntitlementMapper {
	return &entitlementMapper{}
}

func (m *entitlementMapper) ToEntity(model *models.EntitlementModel) (*entitlement.Entitlement, error) {
	if model == nil {
		return nil, nil
	}

	return entitlement.ReconstructEntitlement(
		model.ID,
		model.SID,
		model.UserID,
		model.ProductID,
		model.VersionID,
		model.OrderID,
		model.IsActive,
		model.DownloadCount,
		model.LastDownloadAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *entitlementMapper) ToModel(entity *entitlement.Entitlement) *models.EntitlementModel {
	if entity == nil {
		return nil
	}

	return &models.EntitlementModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		UserID:         entity.UserID(),
		ProductID:      entity.ProductID(),
		VersionID:      entity.VersionID(),
		OrderID:        entity.OrderID(),
		IsActive:       entity.IsActive(),
		DownloadCount:  entity.DownloadCount(),
		LastDownloadAt: entity.LastDownloadAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *entitlementMapper) ToEntities(entitlementModels []*models.EntitlementModel) ([]*entitlement.Entitlement, error) {
	entities := make([]*entitlement.Entitlement, 0, len(entitlementModels))
	for _, model := range entitlementModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *entitlementMapper) TokenToEntity(model *models.DownloadTokenModel) (*entitlement.DownloadToken, error) {
	if model == nil {
		return nil, nil
	}

	return entitlement.ReconstructDownloadToken(
		model.ID,
		model.TokenHash,
		model.UserID,
		model.EntitlementID,
		model.FileID,
		model.StorageKey,
		model.ExpiresAt,
		model.UsedAt,
		model.CreatedAt,
	)
}

func (m *entitlementMapper) TokenToModel(entity *entitlement.DownloadToken) *models.DownloadTokenModel {
	if entity == nil {
		return nil
	}

	return &models.DownloadTokenModel{
		ID:            entity.ID(),
		TokenHash:     entity.TokenHash(),
		UserID:        entity.UserID(),
		EntitlementID: entity.EntitlementID(),
		FileID:        entity.FileID(),
		StorageKey:    entity.StorageKey(),
		ExpiresAt:     entity.ExpiresAt(),
		UsedAt:        entity.UsedAt(),
		CreatedAt:     entity.CreatedAt(),
	}
}
