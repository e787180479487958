package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/upload"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// UploadSessionRepository implements the upload session repository interface
type UploadSessionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUploadSessionRepository creates a new upload session repository
func NewUploadSessionRepository(db *gorm.DB, logger logger.Interface) upload.Repository {
	return &UploadSessionRepository{db: db, logger: logger}
}

// Create creates a new session
func (r *UploadSessionRepository) Create(ctx context.Context, s *upload.Session) error {
	model := toUploadSessionModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create upload session", "seller_id", model.SellerID, "error", err)
		return fmt.Errorf("failed to create upload session: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set session ID: %w", err)
	}

	return nil
}

// Update updates an existing session
func (r *UploadSessionRepository) Update(ctx context.Context, s *upload.Session) error {
	model := toUploadSessionModel(s)

	result := r.db.WithContext(ctx).Model(&models.UploadSessionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"received_bytes": model.ReceivedBytes,
			"status":         model.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update upload session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("upload session not found")
	}

	return nil
}

// GetBySID retrieves a session by public SID
func (r *UploadSessionRepository) GetBySID(ctx context.Context, sid string) (*upload.Session, error) {
	var model models.UploadSessionModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("upload session not found")
		}
		return nil, fmt.Errorf("failed to get upload session: %w", err)
	}

	return upload.ReconstructSession(
		model.ID,
		model.SID,
		model.SellerID,
		model.VersionID,
		model.FileName,
		model.StorageKey,
		model.DeclaredSize,
		model.ReceivedBytes,
		upload.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func toUploadSessionModel(s *upload.Session) *models.UploadSessionModel {
	return &models.UploadSessionModel{
		ID:            s.ID(),
		SID:           s.SID(),
		SellerID:      s.SellerID(),
		VersionID:     s.VersionID(),
		FileName:      s.FileName(),
		StorageKey:    s.StorageKey(),
		DeclaredSize:  s.DeclaredSize(),
		ReceivedBytes: s.ReceivedBytes(),
		Status:        s.Status().String(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}
