package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
)

// ListSellerProductsUseCase lists a seller's own products across all statuses
type ListSellerProductsUseCase struct {
	productRepo product.Repository
}

// NewListSellerProductsUseCase creates a new list seller products use case
func NewListSellerProductsUseCase(productRepo product.Repository) *ListSellerProductsUseCase {
	return &ListSellerProductsUseCase{productRepo: productRepo}
}

// Execute executes the list seller products use case
func (uc *ListSellerProductsUseCase) Execute(ctx context.Context, sellerID uint, request dto.ListSellerProductsRequest) ([]*dto.ProductResponse, int64, error) {
	filter := product.ListFilter{
		SellerID: sellerID,
		Status:   request.Status,
		Page:     request.Page,
		PageSize: request.PageSize,
	}
	normalizePagination(&filter)

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses, total, nil
}
