package usecases

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAuditRepo struct {
	entries []*audit.Entry
}

func (r *fakeAuditRepo) Insert(ctx context.Context, e *audit.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func (r *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action())
	}
	return out
}

func testRecorder() (*auditapp.Recorder, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return auditapp.NewRecorder(repo, testLogger()), repo
}

type fakeOrderRepo struct {
	orders      []*order.Order
	updateCalls int
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if o.ID() == 0 {
		if err := o.SetID(uint(len(r.orders) + 1)); err != nil {
			return err
		}
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	r.updateCalls++
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (r *fakeOrderRepo) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.SID() == sid {
			return o, nil
		}
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (r *fakeOrderRepo) GetByGatewaySession(ctx context.Context, sessionID string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.GatewaySessionID() != nil && *o.GatewaySessionID() == sessionID {
			return o, nil
		}
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (r *fakeOrderRepo) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	return r.orders, int64(len(r.orders)), nil
}

type fakeEntitlementRepo struct {
	entitlements []*entitlement.Entitlement
	createCalls  int
}

func (r *fakeEntitlementRepo) Create(ctx context.Context, e *entitlement.Entitlement) error {
	r.createCalls++
	if e.ID() == 0 {
		if err := e.SetID(uint(len(r.entitlements) + 1)); err != nil {
			return err
		}
	}
	r.entitlements = append(r.entitlements, e)
	return nil
}

func (r *fakeEntitlementRepo) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementRepo) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.SID() == sid {
			return e, nil
		}
	}
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementRepo) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	var out []*entitlement.Entitlement
	for _, e := range r.entitlements {
		if e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntitlementRepo) ExistsActiveForUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	for _, e := range r.entitlements {
		if e.UserID() == userID && e.ProductID() == productID && e.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntitlementRepo) RecordDownload(ctx context.Context, id uint, at time.Time) error {
	return nil
}

func (r *fakeEntitlementRepo) DeactivateByOrder(ctx context.Context, orderID uint) error {
	for _, e := range r.entitlements {
		if e.OrderID() == orderID {
			e.Deactivate()
		}
	}
	return nil
}

type fakeProductRepo struct {
	products []*product.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }

func (r *fakeProductRepo) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	for _, p := range r.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	for _, p := range r.products {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	for _, p := range r.products {
		if p.Slug().String() == slug {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

func (r *fakeProductRepo) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}

func (r *fakeProductRepo) UpdateRatingSummary(ctx context.Context, productID uint, summary product.RatingSummary) error {
	return nil
}

type fakeUserRepo struct {
	users map[uint]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetByCreatorAccount(ctx context.Context, accountID string) (*user.User, error) {
	for _, u := range r.users {
		if u.CreatorAccountID() != nil && *u.CreatorAccountID() == accountID {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type fakeOrderEmailSender struct {
	receipts      int
	notifications int
}

func (s *fakeOrderEmailSender) SendSaleNotificationEmail(to, productTitle string, sellerAmountCents int64, currency string) error {
	s.notifications++
	return nil
}

func (s *fakeOrderEmailSender) SendPurchaseReceiptEmail(to, productTitle string, amountCents int64, currency string) error {
	s.receipts++
	return nil
}

type fakeVersionRepo struct {
	versions []*product.Version
}

func (r *fakeVersionRepo) Create(ctx context.Context, v *product.Version) error {
	r.versions = append(r.versions, v)
	return nil
}

func (r *fakeVersionRepo) GetByID(ctx context.Context, id uint) (*product.Version, error) {
	for _, v := range r.versions {
		if v.ID() == id {
			return v, nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

func (r *fakeVersionRepo) GetBySID(ctx context.Context, sid string) (*product.Version, error) {
	for _, v := range r.versions {
		if v.SID() == sid {
			return v, nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

func (r *fakeVersionRepo) GetByProduct(ctx context.Context, productID uint) ([]*product.Version, error) {
	var out []*product.Version
	for _, v := range r.versions {
		if v.ProductID() == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVersionRepo) GetLatestByProduct(ctx context.Context, productID uint) (*product.Version, error) {
	for i := len(r.versions) - 1; i >= 0; i-- {
		if r.versions[i].ProductID() == productID {
			return r.versions[i], nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

type fakeGateway struct {
	lastCheckout   *paymentgateway.CreateCheckoutRequest
	lastOnboarding *paymentgateway.OnboardingRequest
	checkoutErr    error
	refunded       []string
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutRequest) (*paymentgateway.CreateCheckoutResponse, error) {
	if g.checkoutErr != nil {
		return nil, g.checkoutErr
	}
	g.lastCheckout = &req
	return &paymentgateway.CreateCheckoutResponse{
		SessionID:   "cs_test_1",
		CheckoutURL: "https://pay.example.com/cs_test_1",
	}, nil
}

func (g *fakeGateway) CreateRefund(ctx context.Context, gatewaySessionID string) error {
	g.refunded = append(g.refunded, gatewaySessionID)
	return nil
}

func (g *fakeGateway) CreateOnboardingLink(ctx context.Context, req paymentgateway.OnboardingRequest) (*paymentgateway.OnboardingResponse, error) {
	g.lastOnboarding = &req
	accountID := req.AccountID
	if accountID == "" {
		accountID = "acct_new"
	}
	return &paymentgateway.OnboardingResponse{
		AccountID:     accountID,
		OnboardingURL: "https://pay.example.com/onboard/" + accountID,
	}, nil
}

func (g *fakeGateway) VerifyWebhook(req *http.Request) (*paymentgateway.WebhookEvent, error) {
	return nil, errors.NewUnauthorizedError("invalid signature")
}
