package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// AuditRepository implements the append-only audit log repository
type AuditRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditRepository{db: db, logger: logger}
}

// Insert appends an entry
func (r *AuditRepository) Insert(ctx context.Context, e *audit.Entry) error {
	var metadata []byte
	if e.Metadata() != nil {
		var err error
		metadata, err = json.Marshal(e.Metadata())
		if err != nil {
			return fmt.Errorf("failed to encode audit metadata: %w", err)
		}
	}

	model := &models.AuditLogModel{
		Action:     e.Action(),
		UserID:     e.UserID(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		IPAddress:  e.IPAddress(),
		UserAgent:  e.UserAgent(),
		Metadata:   metadata,
		CreatedAt:  e.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to insert audit entry", "action", model.Action, "error", err)
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return e.SetID(model.ID)
}

// List retrieves a paginated, filtered slice of the trail, newest first
func (r *AuditRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.StartAt != nil {
		query = query.Where("created_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		query = query.Where("created_at <= ?", *filter.EndAt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var logModels []*models.AuditLogModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(logModels))
	for _, model := range logModels {
		var metadata map[string]any
		if len(model.Metadata) > 0 {
			if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
				return nil, 0, fmt.Errorf("failed to decode audit metadata: %w", err)
			}
		}
		entries = append(entries, audit.ReconstructEntry(
			model.ID,
			model.Action,
			model.UserID,
			model.EntityType,
			model.EntityID,
			model.IPAddress,
			model.UserAgent,
			metadata,
			model.CreatedAt,
		))
	}

	return entries, total, nil
}
