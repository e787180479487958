package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	vo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
)

// ListProductsUseCase serves the public catalog. Only approved listings are
// visible to buyers.
type ListProductsUseCase struct {
	productRepo product.Repository
}

// NewListProductsUseCase creates a new list products use case
func NewListProductsUseCase(productRepo product.Repository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute executes the list products use case
func (uc *ListProductsUseCase) Execute(ctx context.Context, request dto.ListProductsRequest) ([]*dto.ProductResponse, int64, error) {
	filter := product.ListFilter{
		Category: request.Category,
		Status:   vo.StatusApproved.String(),
		Search:   request.Search,
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

func normalizePagination(filter *product.ListFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
}
