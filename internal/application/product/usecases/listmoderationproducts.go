package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	vo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
)

// ListModerationProductsUseCase lists products awaiting a moderation
// decision, across all sellers
type ListModerationProductsUseCase struct {
	productRepo product.Repository
}

// NewListModerationProductsUseCase creates a new list moderation products use case
func NewListModerationProductsUseCase(productRepo product.Repository) *ListModerationProductsUseCase {
	return &ListModerationProductsUseCase{productRepo: productRepo}
}

// Execute executes the list moderation products use case
func (uc *ListModerationProductsUseCase) Execute(ctx context.Context, request dto.ListProductsRequest) ([]*dto.ProductResponse, int64, error) {
	filter := product.ListFilter{
		Category: request.Category,
		Status:   vo.StatusPending.String(),
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
