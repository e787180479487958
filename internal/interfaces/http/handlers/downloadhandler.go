package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/entitlement/dto"
	"github.com/sequencehub/sequencehub/internal/application/entitlement/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// DownloadHandler serves entitlements, link issuance, and the token-gated
// file download itself.
type DownloadHandler struct {
	issueDownloadLinkUseCase  *usecases.IssueDownloadLinkUseCase
	serveDownloadUseCase      *usecases.ServeDownloadUseCase
	listMyEntitlementsUseCase *usecases.ListMyEntitlementsUseCase
	logger                    logger.Interface
}

func NewDownloadHandler(
	issueDownloadLinkUC *usecases.IssueDownloadLinkUseCase,
	serveDownloadUC *usecases.ServeDownloadUseCase,
	listMyEntitlementsUC *usecases.ListMyEntitlementsUseCase,
	logger logger.Interface,
) *DownloadHandler {
	return &DownloadHandler{
		issueDownloadLinkUseCase:  issueDownloadLinkUC,
		serveDownloadUseCase:      serveDownloadUC,
		listMyEntitlementsUseCase: listMyEntitlementsUC,
		logger:                    logger,
	}
}

func (h *DownloadHandler) ListMyEntitlements(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entitlements, err := h.listMyEntitlementsUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entitlements)
}

func (h *DownloadHandler) IssueDownloadLink(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.IssueDownloadLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	links, err := h.issueDownloadLinkUseCase.Execute(c.Request.Context(), userID, req, requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, links, "download links issued")
}

// ServeDownload streams the file for a one-time token. No session auth here;
// the token is the credential. The wildcard path segment names the storage
// key the token must have been minted for.
func (h *DownloadHandler) ServeDownload(c *gin.Context) {
	storageKey := strings.TrimPrefix(c.Param("storageKey"), "/")
	stream, err := h.serveDownloadUseCase.Execute(c.Request.Context(), storageKey, c.Query("token"), requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer stream.Reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, stream.FileName))
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Length", fmt.Sprintf("%d", stream.SizeBytes))

	if _, err := io.Copy(c.Writer, stream.Reader); err != nil {
		h.logger.Warnw("download stream interrupted", "file_name", stream.FileName, "error", err)
	}
}
