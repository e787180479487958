package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/application/user/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// AuthHandler serves registration, login, and the password lifecycle.
type AuthHandler struct {
	registerUseCase       *usecases.RegisterUserUseCase
	loginUseCase          *usecases.LoginUserUseCase
	refreshTokenUseCase   *usecases.RefreshTokenUseCase
	requestResetUseCase   *usecases.RequestPasswordResetUseCase
	resetPasswordUseCase  *usecases.ResetPasswordUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	getProfileUseCase     *usecases.GetProfileUseCase
	updateProfileUseCase  *usecases.UpdateProfileUseCase
	logger                logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUserUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	requestResetUC *usecases.RequestPasswordResetUseCase,
	resetPasswordUC *usecases.ResetPasswordUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginUseCase:          loginUC,
		refreshTokenUseCase:   refreshTokenUC,
		requestResetUseCase:   requestResetUC,
		resetPasswordUseCase:  resetPasswordUC,
		changePasswordUseCase: changePasswordUC,
		getProfileUseCase:     getProfileUC,
		updateProfileUseCase:  updateProfileUC,
		logger:                logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.registerUseCase.Execute(c.Request.Context(), req, requestInfo(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, user, "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.loginUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", auth)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.refreshTokenUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", auth)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Same response whether or not the email exists.
	utils.SuccessResponse(c, http.StatusOK, "if the email is registered, a reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password has been reset", nil)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	user, err := h.getProfileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", user)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.updateProfileUseCase.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", user)
}
