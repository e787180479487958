package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// FileRepository implements the sequence file repository interface
type FileRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB, logger logger.Interface) product.FileRepository {
	return &FileRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

// Create creates a new file record
func (r *FileRepository) Create(ctx context.Context, f *product.SequenceFile) error {
	model := r.mapper.FileToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create file record", "version_id", model.VersionID, "error", err)
		return fmt.Errorf("failed to create file record: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set file ID: %w", err)
	}

	return nil
}

// GetByID retrieves a file by internal ID
func (r *FileRepository) GetByID(ctx context.Context, id uint) (*product.SequenceFile, error) {
	var model models.SequenceFileModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return r.mapper.FileToEntity(&model)
}

// GetBySID retrieves a file by public SID
func (r *FileRepository) GetBySID(ctx context.Context, sid string) (*product.SequenceFile, error) {
	var model models.SequenceFileModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return r.mapper.FileToEntity(&model)
}

// GetByVersion retrieves all files in a version
func (r *FileRepository) GetByVersion(ctx context.Context, versionID uint) ([]*product.SequenceFile, error) {
	var fileModels []*models.SequenceFileModel

	if err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("file_name ASC").
		Find(&fileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return r.mapper.FilesToEntities(fileModels)
}

// GetByStorageKey retrieves a file by its storage key
func (r *FileRepository) GetByStorageKey(ctx context.Context, storageKey string) (*product.SequenceFile, error) {
	var model models.SequenceFileModel

	if err := r.db.WithContext(ctx).Where("storage_key = ?", storageKey).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return r.mapper.FileToEntity(&model)
}

// FindByChecksumForSeller finds an existing file with the checksum owned by
// the seller, for upload deduplication. Returns nil when absent.
func (r *FileRepository) FindByChecksumForSeller(ctx context.Context, sellerID uint, checksum string) (*product.SequenceFile, error) {
	var model models.SequenceFileModel

	err := r.db.WithContext(ctx).
		Table(constants.TableSequenceFiles+" AS f").
		Joins("JOIN "+constants.TableProductVersions+" v ON v.id = f.version_id").
		Joins("JOIN "+constants.TableProducts+" p ON p.id = v.product_id").
		Where("f.checksum = ? AND p.seller_id = ?", checksum, sellerID).
		Select("f.*").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find file by checksum: %w", err)
	}

	return r.mapper.FileToEntity(&model)
}
