package paymentgateway

import (
	"context"
	"net/http"
	"time"
)

// PaymentGateway defines the interface for the hosted-checkout payment provider
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted checkout session for an order.
	// Amounts are in the smallest currency unit (cents).
	CreateCheckoutSession(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResponse, error)
	// CreateRefund refunds a completed payment in full.
	CreateRefund(ctx context.Context, gatewaySessionID string) error
	// CreateOnboardingLink starts connected-account onboarding for a seller.
	CreateOnboardingLink(ctx context.Context, req OnboardingRequest) (*OnboardingResponse, error)
	// VerifyWebhook checks the webhook signature and parses the event.
	// The returned WebhookEvent.AmountCents is in the smallest currency unit.
	VerifyWebhook(req *http.Request) (*WebhookEvent, error)
}

// CreateCheckoutRequest contains the data needed to open a checkout session
type CreateCheckoutRequest struct {
	OrderSID         string
	AmountCents      int64
	PlatformFeeCents int64
	Currency         string
	ProductTitle     string
	SellerAccountID  string
	SuccessURL       string
	CancelURL        string
}

type CreateCheckoutResponse struct {
	SessionID   string
	CheckoutURL string
}

// OnboardingRequest starts connected-account onboarding for a seller.
// AccountID carries an already-linked connected account; when set the
// gateway refreshes the onboarding link for that account instead of
// creating a new one.
type OnboardingRequest struct {
	AccountID  string
	UserID     uint
	Email      string
	ReturnURL  string
	RefreshURL string
}

type OnboardingResponse struct {
	AccountID     string
	OnboardingURL string
}

// Webhook event types emitted by the provider
const (
	EventCheckoutCompleted = "checkout.completed"
	EventPaymentRefunded   = "payment.refunded"
	EventAccountUpdated    = "account.updated"
)

// WebhookEvent contains the verified, parsed webhook payload
type WebhookEvent struct {
	EventID        string
	Type           string
	SessionID      string
	AccountID      string
	AmountCents    int64
	Currency       string
	PayoutsEnabled bool
	OccurredAt     time.Time
}
