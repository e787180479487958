package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// CreateProductUseCase creates a draft listing for a seller
type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

// NewCreateProductUseCase creates a new create product use case
func NewCreateProductUseCase(productRepo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute executes the create product use case
func (uc *CreateProductUseCase) Execute(ctx context.Context, sellerID uint, request dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixProduct, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate product ID")
	}

	p, err := product.NewProduct(sid, sellerID, request.Title, request.Description, request.Category, request.PriceCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Infow("product created", "product_sid", p.SID(), "seller_id", sellerID)
	return ToProductResponse(p), nil
}

// ToProductResponse maps a product aggregate to its list representation.
func ToProductResponse(p *product.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		SID:        p.SID(),
		SellerID:   p.SellerID(),
		Title:      p.Title(),
		Slug:       p.Slug().String(),
		Category:   p.Category(),
		PriceCents: p.PriceCents(),
		Status:     p.Status().String(),
		Rating: dto.RatingSummaryResponse{
			AverageRating: p.Rating().AverageRating,
			ReviewCount:   p.Rating().ReviewCount,
			Distribution:  p.Rating().Distribution,
		},
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
