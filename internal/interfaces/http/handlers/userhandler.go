package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/application/user/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	listUsersUseCase      *usecases.ListUsersUseCase
	deactivateUserUseCase *usecases.DeactivateUserUseCase
	logger                logger.Interface
}

func NewUserHandler(
	listUsersUC *usecases.ListUsersUseCase,
	deactivateUserUC *usecases.DeactivateUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUseCase:      listUsersUC,
		deactivateUserUseCase: deactivateUserUC,
		logger:                logger,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	users, total, err := h.listUsersUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	adminID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	if err := h.deactivateUserUseCase.Execute(c.Request.Context(), adminID, uint(targetID), requestInfo(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deactivated", nil)
}
