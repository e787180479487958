package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// CreateVersionUseCase publishes a new version for a product. Entitlements
// issued against earlier versions are unaffected.
type CreateVersionUseCase struct {
	productRepo product.Repository
	versionRepo product.VersionRepository
	logger      logger.Interface
}

// NewCreateVersionUseCase creates a new create version use case
func NewCreateVersionUseCase(
	productRepo product.Repository,
	versionRepo product.VersionRepository,
	logger logger.Interface,
) *CreateVersionUseCase {
	return &CreateVersionUseCase{
		productRepo: productRepo,
		versionRepo: versionRepo,
		logger:      logger,
	}
}

// Execute executes the create version use case
func (uc *CreateVersionUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, productSID string, request dto.CreateVersionRequest) (*dto.VersionResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(actorID, actorRole, p) {
		return nil, errors.NewForbiddenError("you do not own this product")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixVersion, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate version ID")
	}

	v, err := product.NewVersion(sid, p.ID(), request.Label, request.Changelog)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.versionRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Infow("version created", "product_sid", p.SID(), "version_sid", v.SID(), "label", v.Label())
	response := ToVersionResponse(v, nil)
	return &response, nil
}
