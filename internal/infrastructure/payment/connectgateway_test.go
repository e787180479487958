package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/shared/config"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

const testWebhookSecret = "whsec_test"

func newTestGateway() *ConnectGateway {
	return NewConnectGateway(&config.PaymentConfig{
		APIBaseURL:    "https://api.payments.local",
		SecretKey:     "sk_test",
		WebhookSecret: testWebhookSecret,
	}, logger.NewLogger())
}

func signPayload(secret, timestamp, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestConnectGateway_VerifyWebhook(t *testing.T) {
	g := newTestGateway()
	payload := `{"id":"evt_1","type":"checkout.completed","created":1735689600,"data":{"session_id":"cs_123","amount":1999,"currency":"USD"}}`
	ts := "1735689600"
	sig := signPayload(testWebhookSecret, ts, payload)

	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set("X-Webhook-Signature", fmt.Sprintf("t=%s,v1=%s", ts, sig))

	event, err := g.VerifyWebhook(req)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.EventID)
	assert.Equal(t, paymentgateway.EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_123", event.SessionID)
	assert.Equal(t, int64(1999), event.AmountCents)
	assert.Equal(t, "usd", event.Currency)
	assert.Equal(t, int64(1735689600), event.OccurredAt.Unix())
}

func TestConnectGateway_VerifyWebhook_BadSignature(t *testing.T) {
	g := newTestGateway()
	payload := `{"id":"evt_1","type":"checkout.completed","data":{}}`

	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set("X-Webhook-Signature", "t=1735689600,v1="+strings.Repeat("0", 64))

	_, err := g.VerifyWebhook(req)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestConnectGateway_VerifyWebhook_MissingHeader(t *testing.T) {
	g := newTestGateway()
	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader("{}"))

	_, err := g.VerifyWebhook(req)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestConnectGateway_VerifyWebhook_IgnoredEventType(t *testing.T) {
	g := newTestGateway()
	payload := `{"id":"evt_2","type":"invoice.created","data":{}}`
	ts := "1735689600"
	sig := signPayload(testWebhookSecret, ts, payload)

	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set("X-Webhook-Signature", fmt.Sprintf("t=%s,v1=%s", ts, sig))

	_, err := g.VerifyWebhook(req)
	assert.ErrorIs(t, err, ErrEventIgnored)
}

func TestConnectGateway_VerifyWebhook_TamperedPayload(t *testing.T) {
	g := newTestGateway()
	payload := `{"id":"evt_1","type":"checkout.completed","data":{"amount":1999}}`
	ts := "1735689600"
	sig := signPayload(testWebhookSecret, ts, payload)

	tampered := strings.Replace(payload, "1999", "1", 1)
	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(tampered))
	req.Header.Set("X-Webhook-Signature", fmt.Sprintf("t=%s,v1=%s", ts, sig))

	_, err := g.VerifyWebhook(req)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseSignatureHeader(t *testing.T) {
	ts, sigs, err := parseSignatureHeader("t=123, v1=abc, v1=def")
	require.NoError(t, err)
	assert.Equal(t, "123", ts)
	assert.Equal(t, []string{"abc", "def"}, sigs)

	_, _, err = parseSignatureHeader("v1=abc")
	assert.Error(t, err)

	_, _, err = parseSignatureHeader("t=123")
	assert.Error(t, err)
}
