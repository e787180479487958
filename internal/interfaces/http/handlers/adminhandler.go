package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditdto "github.com/sequencehub/sequencehub/internal/application/audit/dto"
	auditusecases "github.com/sequencehub/sequencehub/internal/application/audit/usecases"
	productdto "github.com/sequencehub/sequencehub/internal/application/product/dto"
	productusecases "github.com/sequencehub/sequencehub/internal/application/product/usecases"
	reviewdto "github.com/sequencehub/sequencehub/internal/application/review/dto"
	reviewusecases "github.com/sequencehub/sequencehub/internal/application/review/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// AdminHandler serves the moderation queues and the audit trail.
type AdminHandler struct {
	moderateProductUseCase     *productusecases.ModerateProductUseCase
	listPendingProductsUseCase *productusecases.ListModerationProductsUseCase
	moderateReviewUseCase      *reviewusecases.ModerateReviewUseCase
	listModerationQueueUseCase *reviewusecases.ListModerationQueueUseCase
	listAuditLogsUseCase       *auditusecases.ListAuditLogsUseCase
	logger                     logger.Interface
}

func NewAdminHandler(
	moderateProductUC *productusecases.ModerateProductUseCase,
	listPendingProductsUC *productusecases.ListModerationProductsUseCase,
	moderateReviewUC *reviewusecases.ModerateReviewUseCase,
	listModerationQueueUC *reviewusecases.ListModerationQueueUseCase,
	listAuditLogsUC *auditusecases.ListAuditLogsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		moderateProductUseCase:     moderateProductUC,
		listPendingProductsUseCase: listPendingProductsUC,
		moderateReviewUseCase:      moderateReviewUC,
		listModerationQueueUseCase: listModerationQueueUC,
		listAuditLogsUseCase:       listAuditLogsUC,
		logger:                     logger,
	}
}

func (h *AdminHandler) ModerateProduct(c *gin.Context) {
	adminID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req productdto.ModerateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.moderateProductUseCase.Execute(c.Request.Context(), adminID, sid, req, requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "moderation decision applied", product)
}

func (h *AdminHandler) ListPendingProducts(c *gin.Context) {
	var req productdto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	products, total, err := h.listPendingProductsUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ModerateReview(c *gin.Context) {
	adminID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixReview, "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reviewdto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.moderateReviewUseCase.Execute(c.Request.Context(), adminID, sid, req, requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "moderation decision applied", review)
}

func (h *AdminHandler) ListReviewModerationQueue(c *gin.Context) {
	var req reviewdto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reviews, total, err := h.listModerationQueueUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var req auditdto.ListAuditLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	logs, total, err := h.listAuditLogsUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, logs, total, pagination.Page, pagination.PageSize)
}
