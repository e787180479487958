package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/domain/order"
)

// ListOrdersUseCase lists the caller's purchase history, or a seller's sales
// when asSeller is set
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase creates a new list orders use case
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute executes the list orders use case
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint, asSeller bool, request dto.ListOrdersRequest) ([]*dto.OrderResponse, int64, error) {
	filter := order.ListFilter{
		Status:   request.Status,
		Page:     request.Page,
		PageSize: request.PageSize,
	}
	if asSeller {
		filter.SellerID = userID
	} else {
		filter.BuyerID = userID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(o))
	}
	return responses, total, nil
}
