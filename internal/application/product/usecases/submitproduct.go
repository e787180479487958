package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

// SubmitProductUseCase moves a listing into the moderation queue. The product
// must have at least one version with files so moderators review something
// buyers can actually download.
type SubmitProductUseCase struct {
	productRepo product.Repository
	versionRepo product.VersionRepository
	fileRepo    product.FileRepository
}

// NewSubmitProductUseCase creates a new submit product use case
func NewSubmitProductUseCase(
	productRepo product.Repository,
	versionRepo product.VersionRepository,
	fileRepo product.FileRepository,
) *SubmitProductUseCase {
	return &SubmitProductUseCase{
		productRepo: productRepo,
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
	}
}

// Execute executes the submit product use case
func (uc *SubmitProductUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, productSID string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(actorID, actorRole, p) {
		return nil, errors.NewForbiddenError("you do not own this product")
	}

	latest, err := uc.versionRepo.GetLatestByProduct(ctx, p.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("product needs at least one version before submission")
		}
		return nil, err
	}
	files, err := uc.fileRepo.GetByVersion(ctx, latest.ID())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.NewValidationError("latest version has no files")
	}

	if err := p.SubmitForReview(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}
