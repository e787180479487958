package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/sequencehub/sequencehub/internal/application/audit/dto"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ListAuditLogsUseCase handles admin queries over the audit trail
type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

// NewListAuditLogsUseCase creates a new list audit logs use case
func NewListAuditLogsUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{auditRepo: auditRepo, logger: logger}
}

// Execute executes the list audit logs use case
func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, request dto.ListAuditLogsRequest) ([]*dto.AuditLogResponse, int64, error) {
	filter := audit.ListFilter{
		Action:     request.Action,
		UserID:     request.UserID,
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		Page:       request.Page,
		PageSize:   request.PageSize,
	}

	if request.StartAt != "" {
		t, err := time.Parse(time.RFC3339, request.StartAt)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid start_at, expected RFC3339")
		}
		filter.StartAt = &t
	}
	if request.EndAt != "" {
		t, err := time.Parse(time.RFC3339, request.EndAt)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid end_at, expected RFC3339")
		}
		filter.EndAt = &t
	}

	entries, total, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]*dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, &dto.AuditLogResponse{
			ID:         e.ID(),
			Action:     e.Action(),
			UserID:     e.UserID(),
			EntityType: e.EntityType(),
			EntityID:   e.EntityID(),
			IPAddress:  e.IPAddress(),
			UserAgent:  e.UserAgent(),
			Metadata:   e.Metadata(),
			CreatedAt:  e.CreatedAt(),
		})
	}

	return responses, total, nil
}
