package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	pvo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	uservo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	sharedConfig "github.com/sequencehub/sequencehub/internal/shared/config"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

type checkoutFixture struct {
	uc              *CreateCheckoutUseCase
	orderRepo       *fakeOrderRepo
	entitlementRepo *fakeEntitlementRepo
	gateway         *fakeGateway
}

func newCheckoutFixture(t *testing.T, productStatus pvo.Status, payoutsEnabled bool) *checkoutFixture {
	t.Helper()

	slug, err := pvo.NewSlug("spooky-halloween-mega-mix")
	require.NoError(t, err)
	p, err := product.ReconstructProduct(3, "prod_abc123", 2, "Spooky Halloween Mega Mix", slug, "", "halloween", 1999, productStatus, product.RatingSummary{}, time.Now(), time.Now())
	require.NoError(t, err)

	version, err := product.ReconstructVersion(5, "ver_abc123", 3, "v1.0", "", time.Now())
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	sellerEmail, err := uservo.NewEmail("seller@example.com")
	require.NoError(t, err)
	account := "acct_123"
	seller, err := user.ReconstructUser(2, sellerEmail, "Seller", authorization.RoleSeller, "hash", true, &account, payoutsEnabled, time.Now(), time.Now())
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), seller))

	fx := &checkoutFixture{
		orderRepo:       &fakeOrderRepo{},
		entitlementRepo: &fakeEntitlementRepo{},
		gateway:         &fakeGateway{},
	}

	cfg := &sharedConfig.PaymentConfig{PlatformFeePercent: 20, Currency: "usd"}
	fx.uc = NewCreateCheckoutUseCase(
		fx.orderRepo,
		&fakeProductRepo{products: []*product.Product{p}},
		&fakeVersionRepo{versions: []*product.Version{version}},
		userRepo,
		fx.entitlementRepo,
		fx.gateway,
		cfg,
		"http://localhost:8080",
		testLogger(),
	)
	return fx
}

func TestCreateCheckoutUseCase_Execute_Success(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)

	resp, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_test_1", resp.CheckoutURL)
	assert.NotEmpty(t, resp.OrderID)

	require.Len(t, fx.orderRepo.orders, 1)
	o := fx.orderRepo.orders[0]
	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, int64(1999), o.AmountCents())
	assert.Equal(t, int64(400), o.PlatformFeeCents())
	require.NotNil(t, o.GatewaySessionID())
	assert.Equal(t, "cs_test_1", *o.GatewaySessionID())

	require.NotNil(t, fx.gateway.lastCheckout)
	assert.Equal(t, "acct_123", fx.gateway.lastCheckout.SellerAccountID)
	assert.Equal(t, "http://localhost:8080/orders/"+o.SID()+"/success", fx.gateway.lastCheckout.SuccessURL)
}

func TestCreateCheckoutUseCase_Execute_FeeRoundsHalfUp(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)

	_, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.NoError(t, err)
	// 20% of 1999 is 399.8, rounded to 400
	assert.Equal(t, int64(400), fx.orderRepo.orders[0].PlatformFeeCents())
}

func TestCreateCheckoutUseCase_Execute_SelfPurchaseRejected(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)

	_, err := fx.uc.Execute(context.Background(), 2, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestCreateCheckoutUseCase_Execute_UnapprovedProductHidden(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusPending, true)

	_, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateCheckoutUseCase_Execute_SellerWithoutPayouts(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, false)

	_, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, fx.orderRepo.orders)
}

func TestCreateCheckoutUseCase_Execute_AlreadyOwned(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)
	owned, err := entitlement.ReconstructEntitlement(1, "ent_abc123", 9, 3, 5, 4, true, 0, nil, time.Now(), time.Now())
	require.NoError(t, err)
	fx.entitlementRepo.entitlements = append(fx.entitlementRepo.entitlements, owned)

	_, err = fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "you already own this product", errors.GetAppError(err).Message)
}

func TestCreateCheckoutUseCase_Execute_NoVersionYet(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)
	fx.uc.versionRepo = &fakeVersionRepo{}

	_, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, fx.orderRepo.orders)
}

func TestCreateCheckoutUseCase_Execute_GatewayFailureFailsOrder(t *testing.T) {
	fx := newCheckoutFixture(t, pvo.StatusApproved, true)
	fx.gateway.checkoutErr = assert.AnError

	_, err := fx.uc.Execute(context.Background(), 9, dto.CreateCheckoutRequest{ProductID: "prod_abc123"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	require.Len(t, fx.orderRepo.orders, 1)
	assert.Equal(t, order.StatusFailed, fx.orderRepo.orders[0].Status())
}
