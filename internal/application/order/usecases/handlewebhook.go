package usecases

import (
	"context"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/db"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// HandleWebhookUseCase applies verified gateway events to the order state.
// Events may be delivered more than once; every branch is idempotent.
type HandleWebhookUseCase struct {
	orderRepo       order.Repository
	entitlementRepo entitlement.Repository
	productRepo     product.Repository
	userRepo        user.Repository
	email           EmailSender
	txMgr           *db.TransactionManager
	recorder        *auditapp.Recorder
	logger          logger.Interface
}

// NewHandleWebhookUseCase creates a new handle webhook use case
func NewHandleWebhookUseCase(
	orderRepo order.Repository,
	entitlementRepo entitlement.Repository,
	productRepo product.Repository,
	userRepo user.Repository,
	email EmailSender,
	txMgr *db.TransactionManager,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		orderRepo:       orderRepo,
		entitlementRepo: entitlementRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		email:           email,
		txMgr:           txMgr,
		recorder:        recorder,
		logger:          logger,
	}
}

// Execute executes the handle webhook use case
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, event *paymentgateway.WebhookEvent, req auditapp.RequestInfo) error {
	switch event.Type {
	case paymentgateway.EventCheckoutCompleted:
		return uc.handleCheckoutCompleted(ctx, event, req)
	case paymentgateway.EventPaymentRefunded:
		return uc.handlePaymentRefunded(ctx, event, req)
	case paymentgateway.EventAccountUpdated:
		return uc.handleAccountUpdated(ctx, event)
	default:
		uc.logger.Infow("ignoring webhook event", "event_id", event.EventID, "type", event.Type)
		return nil
	}
}

func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event *paymentgateway.WebhookEvent, req auditapp.RequestInfo) error {
	o, err := uc.orderRepo.GetByGatewaySession(ctx, event.SessionID)
	if err != nil {
		return err
	}

	if o.Status() == order.StatusCompleted {
		uc.logger.Infow("order already completed, skipping", "order_sid", o.SID(), "event_id", event.EventID)
		return nil
	}
	if err := o.Complete(event.OccurredAt); err != nil {
		return errors.NewConflictError(err.Error())
	}

	// Order completion and entitlement grant land together or not at all.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}
		return uc.ensureEntitlement(txCtx, o)
	})
	if txErr != nil {
		return txErr
	}

	uc.recorder.Record(ctx, constants.AuditOrderCompleted, nil, "order", o.SID(), map[string]any{
		"buyer_id":     o.BuyerID(),
		"seller_id":    o.SellerID(),
		"amount_cents": o.AmountCents(),
		"event_id":     event.EventID,
	}, req)

	uc.sendOrderEmails(ctx, o)
	uc.logger.Infow("order completed", "order_sid", o.SID(), "event_id", event.EventID)
	return nil
}

func (uc *HandleWebhookUseCase) ensureEntitlement(ctx context.Context, o *order.Order) error {
	exists, err := uc.entitlementRepo.ExistsActiveForUserAndProduct(ctx, o.BuyerID(), o.ProductID())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	sid, err := id.GenerateWithPrefix(id.PrefixEntitlement, id.DefaultLength)
	if err != nil {
		return errors.NewInternalError("failed to generate entitlement ID")
	}
	ent, err := entitlement.NewEntitlement(sid, o.BuyerID(), o.ProductID(), o.VersionID(), o.ID())
	if err != nil {
		return errors.NewInternalError(err.Error())
	}
	if err := uc.entitlementRepo.Create(ctx, ent); err != nil {
		if errors.IsConflictError(err) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *HandleWebhookUseCase) sendOrderEmails(ctx context.Context, o *order.Order) {
	p, err := uc.productRepo.GetByID(ctx, o.ProductID())
	if err != nil {
		uc.logger.Warnw("failed to load product for order emails", "order_sid", o.SID(), "error", err)
		return
	}

	if buyer, err := uc.userRepo.GetByID(ctx, o.BuyerID()); err == nil {
		if err := uc.email.SendPurchaseReceiptEmail(buyer.Email().String(), p.Title(), o.AmountCents(), o.Currency()); err != nil {
			uc.logger.Warnw("failed to send purchase receipt", "order_sid", o.SID(), "error", err)
		}
	}
	if seller, err := uc.userRepo.GetByID(ctx, o.SellerID()); err == nil {
		if err := uc.email.SendSaleNotificationEmail(seller.Email().String(), p.Title(), o.SellerAmountCents(), o.Currency()); err != nil {
			uc.logger.Warnw("failed to send sale notification", "order_sid", o.SID(), "error", err)
		}
	}
}

func (uc *HandleWebhookUseCase) handlePaymentRefunded(ctx context.Context, event *paymentgateway.WebhookEvent, req auditapp.RequestInfo) error {
	o, err := uc.orderRepo.GetByGatewaySession(ctx, event.SessionID)
	if err != nil {
		return err
	}

	if o.Status() == order.StatusRefunded {
		uc.logger.Infow("order already refunded, skipping", "order_sid", o.SID(), "event_id", event.EventID)
		return nil
	}
	if err := o.Refund(event.OccurredAt); err != nil {
		return errors.NewConflictError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}
		return uc.entitlementRepo.DeactivateByOrder(txCtx, o.ID())
	})
	if txErr != nil {
		return txErr
	}

	uc.recorder.Record(ctx, constants.AuditOrderRefunded, nil, "order", o.SID(), map[string]any{
		"buyer_id": o.BuyerID(),
		"event_id": event.EventID,
	}, req)

	uc.logger.Infow("order refunded, entitlements deactivated", "order_sid", o.SID(), "event_id", event.EventID)
	return nil
}

func (uc *HandleWebhookUseCase) handleAccountUpdated(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	if event.AccountID == "" {
		return errors.NewValidationError("account event without account ID")
	}

	u, err := uc.userRepo.GetByCreatorAccount(ctx, event.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("account event for unknown creator account", "account_id", event.AccountID)
			return nil
		}
		return err
	}

	if !event.PayoutsEnabled || u.PayoutsEnabled() {
		return nil
	}
	if err := u.EnablePayouts(); err != nil {
		return errors.NewConflictError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	uc.logger.Infow("seller payouts enabled", "user_id", u.ID(), "account_id", event.AccountID)
	return nil
}
