package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/db"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// EntitlementRepository implements the entitlement repository interface
type EntitlementRepository struct {
	db     *gorm.DB
	mapper mappers.EntitlementMapper
	logger logger.Interface
}

// NewEntitlementRepository creates a new entitlement repository
func NewEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &EntitlementRepository{
		db:     db,
		mapper: mappers.NewEntitlementMapper(),
		logger: logger,
	}
}

// Create creates a new entitlement
func (r *EntitlementRepository) Create(ctx context.Context, e *entitlement.Entitlement) error {
	model := r.mapper.ToModel(e)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("entitlement already exists for this product")
		}
		r.logger.Errorw("failed to create entitlement", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create entitlement: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("entitlement created", "id", model.ID, "sid", model.SID, "user_id", model.UserID)
	return nil
}

// GetByID retrieves an entitlement by internal ID
func (r *EntitlementRepository) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	var model models.EntitlementModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("entitlement not found")
		}
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves an entitlement by public SID
func (r *EntitlementRepository) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	var model models.EntitlementModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("entitlement not found")
		}
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByUser retrieves all entitlements for a user, newest first
func (r *EntitlementRepository) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	var entitlementModels []*models.EntitlementModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entitlementModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return r.mapper.ToEntities(entitlementModels)
}

// ExistsActiveForUserAndProduct checks for an active entitlement on a user-product pair
func (r *EntitlementRepository) ExistsActiveForUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.EntitlementModel{}).
		Where("user_id = ? AND product_id = ? AND is_active = ?", userID, productID, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check entitlement existence: %w", err)
	}

	return count > 0, nil
}

// RecordDownload atomically increments download_count and sets last_download_at.
// The increment happens in SQL so the count stays monotonic under concurrency.
func (r *EntitlementRepository) RecordDownload(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.EntitlementModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"download_count":   gorm.Expr("download_count + 1"),
			"last_download_at": at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to record download", "id", id, "error", result.Error)
		return fmt.Errorf("failed to record download: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("entitlement not found")
	}

	return nil
}

// DeactivateByOrder deactivates all entitlements sourced from an order.
// Rows are never deleted; the purchase history stays intact.
func (r *EntitlementRepository) DeactivateByOrder(ctx context.Context, orderID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.EntitlementModel{}).
		Where("order_id = ?", orderID).
		Update("is_active", false)
	if result.Error != nil {
		r.logger.Errorw("failed to deactivate entitlements", "order_id", orderID, "error", result.Error)
		return fmt.Errorf("failed to deactivate entitlements: %w", result.Error)
	}

	r.logger.Infow("entitlements deactivated", "order_id", orderID, "count", result.RowsAffected)
	return nil
}

// DownloadTokenRepository implements the download token repository interface
type DownloadTokenRepository struct {
	db     *gorm.DB
	mapper mappers.EntitlementMapper
	logger logger.Interface
}

// NewDownloadTokenRepository creates a new download token repository
func NewDownloadTokenRepository(db *gorm.DB, logger logger.Interface) entitlement.DownloadTokenRepository {
	return &DownloadTokenRepository{
		db:     db,
		mapper: mappers.NewEntitlementMapper(),
		logger: logger,
	}
}

// Create creates a new token row
func (r *DownloadTokenRepository) Create(ctx context.Context, t *entitlement.DownloadToken) error {
	model := r.mapper.TokenToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create download token", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create download token: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set token ID: %w", err)
	}

	return nil
}

// GetByTokenHash retrieves a token by its hash
func (r *DownloadTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*entitlement.DownloadToken, error) {
	var model models.DownloadTokenModel

	if err := db.GetTxFromContext(ctx, r.db).Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("download token not found")
		}
		return nil, fmt.Errorf("failed to get download token: %w", err)
	}

	return r.mapper.TokenToEntity(&model)
}

// ConsumeByTokenHash marks the token used if, and only if, it is still unused
// and unexpired at time now. The conditional UPDATE guarantees single use even
// when two requests race on the same token.
func (r *DownloadTokenRepository) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entitlement.DownloadToken, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DownloadTokenModel{}).
		Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).
		Update("used_at", now)
	if result.Error != nil {
		r.logger.Errorw("failed to consume download token", "error", result.Error)
		return nil, fmt.Errorf("failed to consume download token: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Distinguish used from expired from unknown for the caller.
		var model models.DownloadTokenModel
		err := db.GetTxFromContext(ctx, r.db).Where("token_hash = ?", tokenHash).First(&model).Error
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("download token not found")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to inspect download token: %w", err)
		}
		if model.UsedAt != nil {
			return nil, entitlement.ErrTokenAlreadyUsed
		}
		return nil, entitlement.ErrTokenExpired
	}

	var model models.DownloadTokenModel
	if err := db.GetTxFromContext(ctx, r.db).Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to load consumed token: %w", err)
	}

	return r.mapper.TokenToEntity(&model)
}

// DeleteExpired removes tokens whose expiry is older than before.
func (r *DownloadTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at < ?", before).
		Delete(&models.DownloadTokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", result.Error)
	}

	return result.RowsAffected, nil
}
