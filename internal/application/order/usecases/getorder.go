package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

// GetOrderUseCase returns one order. Visible to the buyer, the seller of the
// product, and admins.
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase creates a new get order use case
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute executes the get order use case
func (uc *GetOrderUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, orderSID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetBySID(ctx, orderSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(actorID, actorRole, o) && o.SellerID() != actorID {
		return nil, errors.NewNotFoundError("order not found")
	}
	return ToOrderResponse(o), nil
}
