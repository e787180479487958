package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RefundOrderUseCase asks the gateway to refund a completed order. Admin
// only. The order itself transitions when the refund webhook arrives, so a
// successful call here still leaves the order completed for a short while.
type RefundOrderUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	logger    logger.Interface
}

// NewRefundOrderUseCase creates a new refund order use case
func NewRefundOrderUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *RefundOrderUseCase {
	return &RefundOrderUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute executes the refund order use case
func (uc *RefundOrderUseCase) Execute(ctx context.Context, adminID uint, orderSID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetBySID(ctx, orderSID)
	if err != nil {
		return nil, err
	}

	if o.Status() != order.StatusCompleted {
		return nil, errors.NewConflictError("only completed orders can be refunded")
	}
	if o.GatewaySessionID() == nil {
		return nil, errors.NewConflictError("order has no gateway session")
	}

	if err := uc.gateway.CreateRefund(ctx, *o.GatewaySessionID()); err != nil {
		uc.logger.Errorw("failed to create refund", "order_sid", o.SID(), "error", err)
		return nil, errors.NewInternalError("failed to create refund")
	}

	uc.logger.Infow("refund requested", "order_sid", o.SID(), "admin_id", adminID)
	return ToOrderResponse(o), nil
}
