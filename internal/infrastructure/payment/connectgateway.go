package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/shared/config"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

var (
	ErrInvalidSignature = fmt.Errorf("invalid webhook signature")
	ErrInvalidPayload   = fmt.Errorf("invalid webhook payload")
	ErrEventIgnored     = fmt.Errorf("webhook event ignored")
)

// ConnectGateway talks to the hosted-checkout provider over its REST API
// and verifies incoming webhooks with an HMAC-SHA256 signature header.
type ConnectGateway struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	client        *http.Client
	logger        logger.Interface
}

func NewConnectGateway(cfg *config.PaymentConfig, log logger.Interface) *ConnectGateway {
	return &ConnectGateway{
		baseURL:       strings.TrimRight(cfg.APIBaseURL, "/"),
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
		client:        &http.Client{Timeout: 30 * time.Second},
		logger:        log,
	}
}

var _ paymentgateway.PaymentGateway = (*ConnectGateway)(nil)

func (g *ConnectGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutRequest) (*paymentgateway.CreateCheckoutResponse, error) {
	payload := map[string]any{
		"reference":           req.OrderSID,
		"amount":              req.AmountCents,
		"application_fee":     req.PlatformFeeCents,
		"currency":            req.Currency,
		"description":         req.ProductTitle,
		"destination_account": req.SellerAccountID,
		"success_url":         req.SuccessURL,
		"cancel_url":          req.CancelURL,
	}

	var resp struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := g.post(ctx, "/v1/checkout/sessions", payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	if resp.ID == "" || resp.URL == "" {
		return nil, fmt.Errorf("gateway returned incomplete checkout session")
	}

	return &paymentgateway.CreateCheckoutResponse{
		SessionID:   resp.ID,
		CheckoutURL: resp.URL,
	}, nil
}

func (g *ConnectGateway) CreateRefund(ctx context.Context, gatewaySessionID string) error {
	payload := map[string]any{"session_id": gatewaySessionID}
	var resp struct {
		Status string `json:"status"`
	}
	if err := g.post(ctx, "/v1/refunds", payload, &resp); err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}
	return nil
}

func (g *ConnectGateway) CreateOnboardingLink(ctx context.Context, req paymentgateway.OnboardingRequest) (*paymentgateway.OnboardingResponse, error) {
	payload := map[string]any{
		"email":       req.Email,
		"reference":   fmt.Sprintf("user-%d", req.UserID),
		"return_url":  req.ReturnURL,
		"refresh_url": req.RefreshURL,
	}
	// An existing account gets a fresh link rather than a second account.
	if req.AccountID != "" {
		payload["account_id"] = req.AccountID
	}

	var resp struct {
		AccountID string `json:"account_id"`
		URL       string `json:"url"`
	}
	if err := g.post(ctx, "/v1/accounts/onboarding", payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create onboarding link: %w", err)
	}
	if resp.AccountID == "" || resp.URL == "" {
		return nil, fmt.Errorf("gateway returned incomplete onboarding link")
	}

	return &paymentgateway.OnboardingResponse{
		AccountID:     resp.AccountID,
		OnboardingURL: resp.URL,
	}, nil
}

// VerifyWebhook checks the signature header, then parses the event body.
// The header format is "t=<unix>,v1=<hex hmac>" with the HMAC computed over
// "<timestamp>.<raw body>".
func (g *ConnectGateway) VerifyWebhook(req *http.Request) (*paymentgateway.WebhookEvent, error) {
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, ErrInvalidPayload
	}

	sigHeader := strings.TrimSpace(req.Header.Get("X-Webhook-Signature"))
	if sigHeader == "" {
		return nil, ErrInvalidSignature
	}

	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, ErrInvalidSignature
	}

	signedPayload := fmt.Sprintf("%s.%s", timestamp, string(payload))
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	_, _ = mac.Write([]byte(signedPayload))
	expected := hex.EncodeToString(mac.Sum(nil))

	matched := false
	for _, signature := range signatures {
		if hmac.Equal([]byte(signature), []byte(expected)) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, ErrInvalidSignature
	}

	return parseWebhookEvent(payload)
}

func parseWebhookEvent(payload []byte) (*paymentgateway.WebhookEvent, error) {
	var event struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Created int64  `json:"created"`
		Data    struct {
			SessionID      string `json:"session_id"`
			AccountID      string `json:"account_id"`
			Amount         int64  `json:"amount"`
			Currency       string `json:"currency"`
			PayoutsEnabled bool   `json:"payouts_enabled"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, ErrInvalidPayload
	}
	if strings.TrimSpace(event.ID) == "" {
		return nil, ErrInvalidPayload
	}

	switch event.Type {
	case paymentgateway.EventCheckoutCompleted,
		paymentgateway.EventPaymentRefunded,
		paymentgateway.EventAccountUpdated:
	default:
		return nil, ErrEventIgnored
	}

	occurredAt := time.Now().UTC()
	if event.Created > 0 {
		occurredAt = time.Unix(event.Created, 0).UTC()
	}

	return &paymentgateway.WebhookEvent{
		EventID:        event.ID,
		Type:           event.Type,
		SessionID:      event.Data.SessionID,
		AccountID:      event.Data.AccountID,
		AmountCents:    event.Data.Amount,
		Currency:       strings.ToLower(strings.TrimSpace(event.Data.Currency)),
		PayoutsEnabled: event.Data.PayoutsEnabled,
		OccurredAt:     occurredAt,
	}, nil
}

func parseSignatureHeader(header string) (string, []string, error) {
	parts := strings.Split(header, ",")
	var timestamp string
	signatures := []string{}
	for _, part := range parts {
		piece := strings.TrimSpace(part)
		if piece == "" {
			continue
		}
		keyValue := strings.SplitN(piece, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		key := strings.TrimSpace(keyValue[0])
		value := strings.TrimSpace(keyValue[1])
		if key == "t" {
			timestamp = value
		}
		if key == "v1" {
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return "", nil, fmt.Errorf("malformed signature header")
	}
	return timestamp, signatures, nil
}

func (g *ConnectGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		g.logger.Warnw("gateway returned error status",
			"path", path,
			"status", resp.StatusCode,
			"body", string(msg),
		)
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
