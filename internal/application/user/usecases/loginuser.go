package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// LoginUserUseCase handles the business logic for authentication
type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

// NewLoginUserUseCase creates a new login use case
func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute executes the login use case. Unknown email and wrong password both
// surface the same error so the endpoint cannot be used to probe accounts.
func (uc *LoginUserUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.AuthResponse, error) {
	u, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
		}
		return nil, err
	}

	if err := uc.hasher.Verify(request.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	if !u.IsActive() {
		return nil, errors.NewForbiddenError(user.ErrAccountDisabled.Error())
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate session tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &dto.AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
