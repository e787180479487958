package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ChangePasswordUseCase changes the password of an authenticated user
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	email    EmailSender
	logger   logger.Interface
}

// NewChangePasswordUseCase creates a new change password use case
func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	email EmailSender,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		email:    email,
		logger:   logger,
	}
}

// Execute executes the change password use case
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uint, request dto.ChangePasswordRequest) error {
	password, err := vo.NewPassword(request.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.hasher.Verify(request.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		return errors.NewInternalError("failed to hash password")
	}
	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	if err := uc.email.SendPasswordChangedEmail(u.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "user_id", u.ID(), "error", err)
	}

	return nil
}
