package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/application/order/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// OrderHandler serves checkout, order history, and seller payout onboarding.
type OrderHandler struct {
	createCheckoutUseCase  *usecases.CreateCheckoutUseCase
	listOrdersUseCase      *usecases.ListOrdersUseCase
	getOrderUseCase        *usecases.GetOrderUseCase
	startOnboardingUseCase *usecases.StartOnboardingUseCase
	refundOrderUseCase     *usecases.RefundOrderUseCase
	logger                 logger.Interface
}

func NewOrderHandler(
	createCheckoutUC *usecases.CreateCheckoutUseCase,
	listOrdersUC *usecases.ListOrdersUseCase,
	getOrderUC *usecases.GetOrderUseCase,
	startOnboardingUC *usecases.StartOnboardingUseCase,
	refundOrderUC *usecases.RefundOrderUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createCheckoutUseCase:  createCheckoutUC,
		listOrdersUseCase:      listOrdersUC,
		getOrderUseCase:        getOrderUC,
		startOnboardingUseCase: startOnboardingUC,
		refundOrderUseCase:     refundOrderUC,
		logger:                 logger,
	}
}

func (h *OrderHandler) CreateCheckout(c *gin.Context) {
	buyerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	checkout, err := h.createCheckoutUseCase.Execute(c.Request.Context(), buyerID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, checkout, "checkout session created")
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	asSeller := c.Query("as_seller") == "true" && currentRole(c).IsSeller()
	orders, total, err := h.listOrdersUseCase.Execute(c.Request.Context(), userID, asSeller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrder, "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	order, err := h.getOrderUseCase.Execute(c.Request.Context(), userID, currentRole(c), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", order)
}

func (h *OrderHandler) StartOnboarding(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.StartOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	onboarding, err := h.startOnboardingUseCase.Execute(c.Request.Context(), sellerID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "onboarding started", onboarding)
}

func (h *OrderHandler) RefundOrder(c *gin.Context) {
	adminID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrder, "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	order, err := h.refundOrderUseCase.Execute(c.Request.Context(), adminID, sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund requested", order)
}
