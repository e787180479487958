package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/upload/dto"
	"github.com/sequencehub/sequencehub/internal/application/upload/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// UploadHandler serves the chunked file upload endpoints for sellers.
type UploadHandler struct {
	initUploadUseCase     *usecases.InitUploadUseCase
	uploadChunkUseCase    *usecases.UploadChunkUseCase
	completeUploadUseCase *usecases.CompleteUploadUseCase
	abortUploadUseCase    *usecases.AbortUploadUseCase
	logger                logger.Interface
}

func NewUploadHandler(
	initUploadUC *usecases.InitUploadUseCase,
	uploadChunkUC *usecases.UploadChunkUseCase,
	completeUploadUC *usecases.CompleteUploadUseCase,
	abortUploadUC *usecases.AbortUploadUseCase,
	logger logger.Interface,
) *UploadHandler {
	return &UploadHandler{
		initUploadUseCase:     initUploadUC,
		uploadChunkUseCase:    uploadChunkUC,
		completeUploadUseCase: completeUploadUC,
		abortUploadUseCase:    abortUploadUC,
		logger:                logger,
	}
}

func (h *UploadHandler) InitUpload(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.InitUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.initUploadUseCase.Execute(c.Request.Context(), sellerID, currentRole(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, session, "upload session opened")
}

// UploadChunk appends the raw request body to the session. The body is the
// chunk; Content-Length must be accurate.
func (h *UploadHandler) UploadChunk(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUpload, "upload")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Request.ContentLength <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "chunk body is required")
		return
	}

	session, err := h.uploadChunkUseCase.Execute(c.Request.Context(), sellerID, currentRole(c), sid, c.Request.ContentLength, c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "chunk received", session)
}

func (h *UploadHandler) CompleteUpload(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUpload, "upload")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.completeUploadUseCase.Execute(c.Request.Context(), sellerID, currentRole(c), sid, requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "upload completed", file)
}

func (h *UploadHandler) AbortUpload(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUpload, "upload")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.abortUploadUseCase.Execute(c.Request.Context(), sellerID, currentRole(c), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
