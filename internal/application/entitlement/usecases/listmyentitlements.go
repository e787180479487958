package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/entitlement/dto"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
)

// ListMyEntitlementsUseCase lists all entitlements of the caller, including
// deactivated ones
type ListMyEntitlementsUseCase struct {
	entitlementRepo entitlement.Repository
}

// NewListMyEntitlementsUseCase creates a new list my entitlements use case
func NewListMyEntitlementsUseCase(entitlementRepo entitlement.Repository) *ListMyEntitlementsUseCase {
	return &ListMyEntitlementsUseCase{entitlementRepo: entitlementRepo}
}

// Execute executes the list my entitlements use case
func (uc *ListMyEntitlementsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.EntitlementResponse, error) {
	entitlements, err := uc.entitlementRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EntitlementResponse, 0, len(entitlements))
	for _, e := range entitlements {
		responses = append(responses, &dto.EntitlementResponse{
			SID:            e.SID(),
			ProductID:      e.ProductID(),
			VersionID:      e.VersionID(),
			IsActive:       e.IsActive(),
			DownloadCount:  e.DownloadCount(),
			LastDownloadAt: e.LastDownloadAt(),
			CreatedAt:      e.CreatedAt(),
		})
	}
	return responses, nil
}
