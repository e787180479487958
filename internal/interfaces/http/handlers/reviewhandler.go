package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/application/review/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// ReviewHandler serves review authoring for buyers.
type ReviewHandler struct {
	createReviewUseCase *usecases.CreateReviewUseCase
	updateReviewUseCase *usecases.UpdateReviewUseCase
	deleteReviewUseCase *usecases.DeleteReviewUseCase
	logger              logger.Interface
}

func NewReviewHandler(
	createReviewUC *usecases.CreateReviewUseCase,
	updateReviewUC *usecases.UpdateReviewUseCase,
	deleteReviewUC *usecases.DeleteReviewUseCase,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUseCase: createReviewUC,
		updateReviewUseCase: updateReviewUC,
		deleteReviewUseCase: deleteReviewUC,
		logger:              logger,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.createReviewUseCase.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, review, "review submitted for moderation")
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixReview, "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.updateReviewUseCase.Execute(c.Request.Context(), userID, currentRole(c), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review updated", review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixReview, "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReviewUseCase.Execute(c.Request.Context(), userID, currentRole(c), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
