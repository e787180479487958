package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/review"
)

// ListProductReviewsUseCase lists the approved reviews of a product
type ListProductReviewsUseCase struct {
	reviewRepo  review.Repository
	productRepo product.Repository
}

// NewListProductReviewsUseCase creates a new list product reviews use case
func NewListProductReviewsUseCase(reviewRepo review.Repository, productRepo product.Repository) *ListProductReviewsUseCase {
	return &ListProductReviewsUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Execute executes the list product reviews use case
func (uc *ListProductReviewsUseCase) Execute(ctx context.Context, productSID string, request dto.ListReviewsRequest) ([]*dto.ReviewResponse, int64, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, 0, err
	}

	filter := review.ListFilter{
		ProductID: p.ID(),
		Status:    review.StatusApproved.String(),
		Page:      request.Page,
		PageSize:  request.PageSize,
	}
	normalizeReviewPagination(&filter)

	reviews, total, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, ToReviewResponse(r))
	}
	return responses, total, nil
}

func normalizeReviewPagination(filter *review.ListFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
}
