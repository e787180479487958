package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	pvo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	uservo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	shareddb "github.com/sequencehub/sequencehub/internal/shared/db"
)

type webhookFixture struct {
	uc              *HandleWebhookUseCase
	orderRepo       *fakeOrderRepo
	entitlementRepo *fakeEntitlementRepo
	userRepo        *fakeUserRepo
	email           *fakeOrderEmailSender
	auditRepo       *fakeAuditRepo
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()

	slug, err := pvo.NewSlug("spooky-halloween-mega-mix")
	require.NoError(t, err)
	p, err := product.ReconstructProduct(3, "prod_abc123", 2, "Spooky Halloween Mega Mix", slug, "", "halloween", 1999, pvo.StatusApproved, product.RatingSummary{}, time.Now(), time.Now())
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	buyerEmail, err := uservo.NewEmail("buyer@example.com")
	require.NoError(t, err)
	buyer, err := user.ReconstructUser(9, buyerEmail, "Buyer", authorization.RoleBuyer, "hash", true, nil, false, time.Now(), time.Now())
	require.NoError(t, err)
	sellerEmail, err := uservo.NewEmail("seller@example.com")
	require.NoError(t, err)
	account := "acct_123"
	seller, err := user.ReconstructUser(2, sellerEmail, "Seller", authorization.RoleSeller, "hash", true, &account, false, time.Now(), time.Now())
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), buyer))
	require.NoError(t, userRepo.Create(context.Background(), seller))

	fx := &webhookFixture{
		orderRepo:       &fakeOrderRepo{},
		entitlementRepo: &fakeEntitlementRepo{},
		userRepo:        userRepo,
		email:           &fakeOrderEmailSender{},
	}

	recorder, auditRepo := testRecorder()
	fx.auditRepo = auditRepo
	fx.uc = NewHandleWebhookUseCase(
		fx.orderRepo, fx.entitlementRepo, &fakeProductRepo{products: []*product.Product{p}},
		fx.userRepo, fx.email, shareddb.NewTransactionManager(nil), recorder, testLogger(),
	)
	return fx
}

func (fx *webhookFixture) seedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	session := "cs_test_1"
	var paidAt *time.Time
	if status == order.StatusCompleted || status == order.StatusRefunded {
		at := time.Now().Add(-time.Hour)
		paidAt = &at
	}
	o, err := order.ReconstructOrder(1, "ord_abc123", 9, 2, 3, 5, 1999, 400, "usd", status, &session, paidAt, nil, time.Now(), time.Now())
	require.NoError(t, err)
	fx.orderRepo.orders = append(fx.orderRepo.orders, o)
	return o
}

func checkoutCompletedEvent() *paymentgateway.WebhookEvent {
	return &paymentgateway.WebhookEvent{
		EventID:    "evt_1",
		Type:       paymentgateway.EventCheckoutCompleted,
		SessionID:  "cs_test_1",
		OccurredAt: time.Now(),
	}
}

func TestHandleWebhookUseCase_CheckoutCompleted(t *testing.T) {
	fx := newWebhookFixture(t)
	o := fx.seedOrder(t, order.StatusPending)

	err := fx.uc.Execute(context.Background(), checkoutCompletedEvent(), auditapp.RequestInfo{})

	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, o.Status())
	require.Len(t, fx.entitlementRepo.entitlements, 1)
	ent := fx.entitlementRepo.entitlements[0]
	assert.Equal(t, uint(9), ent.UserID())
	assert.Equal(t, uint(3), ent.ProductID())
	assert.Equal(t, uint(5), ent.VersionID())
	assert.True(t, ent.IsActive())

	assert.Equal(t, []string{constants.AuditOrderCompleted}, fx.auditRepo.actions())
	assert.Equal(t, 1, fx.email.receipts)
	assert.Equal(t, 1, fx.email.notifications)
}

func TestHandleWebhookUseCase_CheckoutCompleted_Redelivered(t *testing.T) {
	fx := newWebhookFixture(t)
	fx.seedOrder(t, order.StatusPending)

	require.NoError(t, fx.uc.Execute(context.Background(), checkoutCompletedEvent(), auditapp.RequestInfo{}))
	require.NoError(t, fx.uc.Execute(context.Background(), checkoutCompletedEvent(), auditapp.RequestInfo{}))

	assert.Len(t, fx.entitlementRepo.entitlements, 1)
	assert.Equal(t, 1, fx.entitlementRepo.createCalls)
	assert.Len(t, fx.auditRepo.entries, 1)
	assert.Equal(t, 1, fx.email.receipts)
}

func TestHandleWebhookUseCase_PaymentRefunded(t *testing.T) {
	fx := newWebhookFixture(t)
	o := fx.seedOrder(t, order.StatusPending)

	require.NoError(t, fx.uc.Execute(context.Background(), checkoutCompletedEvent(), auditapp.RequestInfo{}))

	refund := &paymentgateway.WebhookEvent{
		EventID:    "evt_2",
		Type:       paymentgateway.EventPaymentRefunded,
		SessionID:  "cs_test_1",
		OccurredAt: time.Now(),
	}
	require.NoError(t, fx.uc.Execute(context.Background(), refund, auditapp.RequestInfo{}))

	assert.Equal(t, order.StatusRefunded, o.Status())
	require.Len(t, fx.entitlementRepo.entitlements, 1)
	assert.False(t, fx.entitlementRepo.entitlements[0].IsActive())
	assert.Equal(t, []string{constants.AuditOrderCompleted, constants.AuditOrderRefunded}, fx.auditRepo.actions())

	// redelivery is a no-op
	require.NoError(t, fx.uc.Execute(context.Background(), refund, auditapp.RequestInfo{}))
	assert.Len(t, fx.auditRepo.entries, 2)
}

func TestHandleWebhookUseCase_AccountUpdated_EnablesPayouts(t *testing.T) {
	fx := newWebhookFixture(t)

	event := &paymentgateway.WebhookEvent{
		EventID:        "evt_3",
		Type:           paymentgateway.EventAccountUpdated,
		AccountID:      "acct_123",
		PayoutsEnabled: true,
		OccurredAt:     time.Now(),
	}
	require.NoError(t, fx.uc.Execute(context.Background(), event, auditapp.RequestInfo{}))

	seller, err := fx.userRepo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, seller.PayoutsEnabled())

	// redelivery is a no-op
	require.NoError(t, fx.uc.Execute(context.Background(), event, auditapp.RequestInfo{}))
}

func TestHandleWebhookUseCase_AccountUpdated_UnknownAccountIgnored(t *testing.T) {
	fx := newWebhookFixture(t)

	event := &paymentgateway.WebhookEvent{
		EventID:        "evt_4",
		Type:           paymentgateway.EventAccountUpdated,
		AccountID:      "acct_unknown",
		PayoutsEnabled: true,
		OccurredAt:     time.Now(),
	}
	assert.NoError(t, fx.uc.Execute(context.Background(), event, auditapp.RequestInfo{}))
}

func TestHandleWebhookUseCase_UnknownEventTypeIgnored(t *testing.T) {
	fx := newWebhookFixture(t)

	event := &paymentgateway.WebhookEvent{EventID: "evt_5", Type: "invoice.created"}
	assert.NoError(t, fx.uc.Execute(context.Background(), event, auditapp.RequestInfo{}))
	assert.Empty(t, fx.auditRepo.actions())
}
