package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/application/order/usecases"
	"github.com/sequencehub/sequencehub/internal/infrastructure/payment"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// WebhookHandler receives payment gateway events. Signature verification
// happens before anything else; an unverifiable payload is rejected without
// touching application state.
type WebhookHandler struct {
	gateway              paymentgateway.PaymentGateway
	handleWebhookUseCase *usecases.HandleWebhookUseCase
	logger               logger.Interface
}

func NewWebhookHandler(
	gateway paymentgateway.PaymentGateway,
	handleWebhookUC *usecases.HandleWebhookUseCase,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		gateway:              gateway,
		handleWebhookUseCase: handleWebhookUC,
		logger:               logger,
	}
}

func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	event, err := h.gateway.VerifyWebhook(c.Request)
	if err != nil {
		switch err {
		case payment.ErrEventIgnored:
			c.Status(http.StatusOK)
		case payment.ErrInvalidSignature:
			h.logger.Warnw("webhook signature verification failed", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid webhook signature")
		default:
			h.logger.Warnw("webhook payload rejected", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid webhook payload")
		}
		return
	}

	if err := h.handleWebhookUseCase.Execute(c.Request.Context(), event, requestInfo(c)); err != nil {
		// Non-2xx makes the gateway retry the delivery later.
		h.logger.Errorw("failed to process webhook event", "event_id", event.EventID, "type", event.Type, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process event")
		return
	}

	c.Status(http.StatusOK)
}
