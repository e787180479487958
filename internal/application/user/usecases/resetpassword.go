package usecases

import (
	"context"
	"time"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/infrastructure/token"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ResetPasswordUseCase completes the password reset flow
type ResetPasswordUseCase struct {
	userRepo  user.Repository
	resetRepo user.PasswordResetRepository
	hasher    PasswordHasher
	email     EmailSender
	logger    logger.Interface
}

// NewResetPasswordUseCase creates a new reset password use case
func NewResetPasswordUseCase(
	userRepo user.Repository,
	resetRepo user.PasswordResetRepository,
	hasher PasswordHasher,
	email EmailSender,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		hasher:    hasher,
		email:     email,
		logger:    logger,
	}
}

// Execute executes the reset password use case
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, request dto.ResetPasswordRequest) error {
	password, err := vo.NewPassword(request.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	reset, err := uc.resetRepo.GetByTokenHash(ctx, token.Hash(request.Token))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewUnauthorizedError("invalid or expired reset token")
		}
		return err
	}
	if !reset.IsUsable(time.Now()) {
		return errors.NewUnauthorizedError("invalid or expired reset token")
	}

	u, err := uc.userRepo.GetByID(ctx, reset.UserID())
	if err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		return errors.NewInternalError("failed to hash password")
	}
	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.resetRepo.Consume(ctx, reset.ID()); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	if err := uc.email.SendPasswordChangedEmail(u.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}
