package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// PasswordResetRepository persists one-time password reset tokens
type PasswordResetRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB, logger logger.Interface) user.PasswordResetRepository {
	return &PasswordResetRepository{db: db, logger: logger}
}

// Save stores a reset token hash for the user, replacing any previous one
func (r *PasswordResetRepository) Save(ctx context.Context, reset *user.PasswordReset) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", reset.UserID()).
			Delete(&models.PasswordResetTokenModel{}).Error; err != nil {
			return err
		}

		model := &models.PasswordResetTokenModel{
			UserID:    reset.UserID(),
			TokenHash: reset.TokenHash(),
			ExpiresAt: reset.ExpiresAt(),
			CreatedAt: reset.CreatedAt(),
		}
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return reset.SetID(model.ID)
	})
	if err != nil {
		r.logger.Errorw("failed to save password reset token", "user_id", reset.UserID(), "error", err)
		return fmt.Errorf("failed to save password reset token: %w", err)
	}
	return nil
}

// GetByTokenHash retrieves an unconsumed reset entry by token hash
func (r *PasswordResetRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.PasswordReset, error) {
	var model models.PasswordResetTokenModel

	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("reset token not found")
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return user.ReconstructPasswordReset(
		model.ID,
		model.UserID,
		model.TokenHash,
		model.ExpiresAt,
		model.UsedAt,
		model.CreatedAt,
	), nil
}

// Consume marks the reset entry as used
func (r *PasswordResetRepository) Consume(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.PasswordResetTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("failed to consume reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("reset token already used")
	}
	return nil
}
