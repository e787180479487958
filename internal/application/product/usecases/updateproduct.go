package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// UpdateProductUseCase edits a listing. Editing an approved product sends it
// back through moderation.
type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

// NewUpdateProductUseCase creates a new update product use case
func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute executes the update product use case
func (uc *UpdateProductUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, productSID string, request dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(actorID, actorRole, p) {
		return nil, errors.NewForbiddenError("you do not own this product")
	}

	wasApproved := p.Status().IsPurchasable()
	if err := p.Update(request.Title, request.Description, request.Category, request.PriceCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if wasApproved {
		uc.logger.Infow("approved product edited, returned to moderation", "product_sid", p.SID())
	}
	return ToProductResponse(p), nil
}
