package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/infrastructure/auth"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RefreshTokenUseCase exchanges a refresh token for a fresh token pair
type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

// NewRefreshTokenUseCase creates a new refresh token use case
func NewRefreshTokenUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, tokens: tokens, logger: logger}
}

// Execute executes the refresh token use case
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, request dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	claims, err := uc.tokens.Verify(request.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, errors.NewUnauthorizedError("not a refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError(user.ErrAccountDisabled.Error())
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate session tokens")
	}

	return &dto.AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
