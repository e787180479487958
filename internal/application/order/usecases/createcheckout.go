package usecases

import (
	"context"
	"fmt"
	"math"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	sharedConfig "github.com/sequencehub/sequencehub/internal/shared/config"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// CreateCheckoutUseCase opens a hosted checkout session for a product. The
// order is created pending and bound to the product's latest version; the
// platform fee is carved out of the price at session creation.
type CreateCheckoutUseCase struct {
	orderRepo       order.Repository
	productRepo     product.Repository
	versionRepo     product.VersionRepository
	userRepo        user.Repository
	entitlementRepo entitlement.Repository
	gateway         paymentgateway.PaymentGateway
	paymentCfg      *sharedConfig.PaymentConfig
	baseURL         string
	logger          logger.Interface
}

// NewCreateCheckoutUseCase creates a new create checkout use case
func NewCreateCheckoutUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	versionRepo product.VersionRepository,
	userRepo user.Repository,
	entitlementRepo entitlement.Repository,
	gateway paymentgateway.PaymentGateway,
	paymentCfg *sharedConfig.PaymentConfig,
	baseURL string,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		versionRepo:     versionRepo,
		userRepo:        userRepo,
		entitlementRepo: entitlementRepo,
		gateway:         gateway,
		paymentCfg:      paymentCfg,
		baseURL:         baseURL,
		logger:          logger,
	}
}

// Execute executes the create checkout use case
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, buyerID uint, request dto.CreateCheckoutRequest) (*dto.CheckoutResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsPurchasable() {
		return nil, errors.NewNotFoundError("product not found")
	}
	if p.SellerID() == buyerID {
		return nil, errors.NewValidationError("you cannot buy your own product")
	}

	seller, err := uc.userRepo.GetByID(ctx, p.SellerID())
	if err != nil {
		return nil, err
	}
	if !seller.CanReceivePayments() {
		return nil, errors.NewConflictError("seller is not able to receive payments yet")
	}

	exists, err := uc.entitlementRepo.ExistsActiveForUserAndProduct(ctx, buyerID, p.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("you already own this product")
	}

	version, err := uc.versionRepo.GetLatestByProduct(ctx, p.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewConflictError("product has no downloadable version")
		}
		return nil, err
	}

	sid, err := id.GenerateWithPrefix(id.PrefixOrder, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate order ID")
	}

	feeCents := int64(math.Round(float64(p.PriceCents()) * uc.paymentCfg.PlatformFeePercent / 100))
	o, err := order.NewOrder(sid, buyerID, p.SellerID(), p.ID(), version.ID(), p.PriceCents(), feeCents, uc.paymentCfg.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	successURL := request.SuccessURL
	if successURL == "" {
		successURL = fmt.Sprintf("%s/orders/%s/success", uc.baseURL, o.SID())
	}
	cancelURL := request.CancelURL
	if cancelURL == "" {
		cancelURL = fmt.Sprintf("%s/orders/%s/cancel", uc.baseURL, o.SID())
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, paymentgateway.CreateCheckoutRequest{
		OrderSID:         o.SID(),
		AmountCents:      o.AmountCents(),
		PlatformFeeCents: o.PlatformFeeCents(),
		Currency:         o.Currency(),
		ProductTitle:     p.Title(),
		SellerAccountID:  *seller.CreatorAccountID(),
		SuccessURL:       successURL,
		CancelURL:        cancelURL,
	})
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "order_sid", o.SID(), "error", err)
		if failErr := o.Fail(); failErr == nil {
			if updateErr := uc.orderRepo.Update(ctx, o); updateErr != nil {
				uc.logger.Errorw("failed to mark order failed", "order_sid", o.SID(), "error", updateErr)
			}
		}
		return nil, errors.NewInternalError("failed to start checkout")
	}

	if err := o.AttachGatewaySession(session.SessionID); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Infow("checkout session created",
		"order_sid", o.SID(), "product_sid", p.SID(),
		"amount_cents", o.AmountCents(), "platform_fee_cents", o.PlatformFeeCents())

	return &dto.CheckoutResponse{
		OrderID:     o.SID(),
		CheckoutURL: session.CheckoutURL,
	}, nil
}

// ToOrderResponse maps an order aggregate to its API representation.
func ToOrderResponse(o *order.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		SID:              o.SID(),
		BuyerID:          o.BuyerID(),
		SellerID:         o.SellerID(),
		ProductID:        o.ProductID(),
		VersionID:        o.VersionID(),
		AmountCents:      o.AmountCents(),
		PlatformFeeCents: o.PlatformFeeCents(),
		Currency:         o.Currency(),
		Status:           o.Status().String(),
		PaidAt:           o.PaidAt(),
		RefundedAt:       o.RefundedAt(),
		CreatedAt:        o.CreatedAt(),
	}
}
