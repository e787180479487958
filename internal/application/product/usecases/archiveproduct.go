package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ArchiveProductUseCase removes a listing from the marketplace. Entitlements
// already issued keep working.
type ArchiveProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

// NewArchiveProductUseCase creates a new archive product use case
func NewArchiveProductUseCase(productRepo product.Repository, logger logger.Interface) *ArchiveProductUseCase {
	return &ArchiveProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute executes the archive product use case
func (uc *ArchiveProductUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, productSID string) error {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResource(actorID, actorRole, p) {
		return errors.NewForbiddenError("you do not own this product")
	}

	if err := p.Archive(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return err
	}

	uc.logger.Infow("product archived", "product_sid", p.SID(), "actor_id", actorID)
	return nil
}
