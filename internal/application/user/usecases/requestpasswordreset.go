package usecases

import (
	"context"
	"time"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RequestPasswordResetUseCase starts the password reset flow
type RequestPasswordResetUseCase struct {
	userRepo  user.Repository
	resetRepo user.PasswordResetRepository
	generator ResetTokenGenerator
	email     EmailSender
	ttl       time.Duration
	logger    logger.Interface
}

// NewRequestPasswordResetUseCase creates a new request password reset use case
func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	resetRepo user.PasswordResetRepository,
	generator ResetTokenGenerator,
	email EmailSender,
	ttl time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		generator: generator,
		email:     email,
		ttl:       ttl,
		logger:    logger,
	}
}

// Execute executes the request password reset use case. The outcome is the
// same whether or not the email exists, so the endpoint does not leak which
// addresses have accounts.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, request dto.RequestPasswordResetRequest) error {
	u, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Infow("password reset requested for unknown email")
			return nil
		}
		return err
	}

	plaintext, hash, err := uc.generator.Generate()
	if err != nil {
		return errors.NewInternalError("failed to generate reset token")
	}

	reset, err := user.NewPasswordReset(u.ID(), hash, time.Now().Add(uc.ttl))
	if err != nil {
		return errors.NewInternalError(err.Error())
	}

	if err := uc.resetRepo.Save(ctx, reset); err != nil {
		return err
	}

	if err := uc.email.SendPasswordResetEmail(u.Email().String(), plaintext); err != nil {
		uc.logger.Errorw("failed to send reset email", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to send reset email")
	}

	uc.logger.Infow("password reset email sent", "user_id", u.ID())
	return nil
}
