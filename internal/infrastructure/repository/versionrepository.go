package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// VersionRepository implements the product version repository interface
type VersionRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(db *gorm.DB, logger logger.Interface) product.VersionRepository {
	return &VersionRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

// Create creates a new version
func (r *VersionRepository) Create(ctx context.Context, v *product.Version) error {
	model := r.mapper.VersionToModel(v)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("version label already exists for this product")
		}
		r.logger.Errorw("failed to create version", "product_id", model.ProductID, "error", err)
		return fmt.Errorf("failed to create version: %w", err)
	}

	if err := v.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set version ID: %w", err)
	}

	return nil
}

// GetByID retrieves a version by internal ID
func (r *VersionRepository) GetByID(ctx context.Context, id uint) (*product.Version, error) {
	var model models.ProductVersionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("version not found")
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	return r.mapper.VersionToEntity(&model)
}

// GetBySID retrieves a version by public SID
func (r *VersionRepository) GetBySID(ctx context.Context, sid string) (*product.Version, error) {
	var model models.ProductVersionModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("version not found")
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	return r.mapper.VersionToEntity(&model)
}

// GetByProduct retrieves all versions for a product, newest first
func (r *VersionRepository) GetByProduct(ctx context.Context, productID uint) ([]*product.Version, error) {
	var versionModels []*models.ProductVersionModel

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&versionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	return r.mapper.VersionsToEntities(versionModels)
}

// GetLatestByProduct retrieves the newest version for a product
func (r *VersionRepository) GetLatestByProduct(ctx context.Context, productID uint) (*product.Version, error) {
	var model models.ProductVersionModel

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("product has no versions")
		}
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}

	return r.mapper.VersionToEntity(&model)
}
