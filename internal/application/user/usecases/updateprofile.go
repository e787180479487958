package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// UpdateProfileUseCase updates the profile of an authenticated user
type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewUpdateProfileUseCase creates a new update profile use case
func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute executes the update profile use case
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uint, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(request.DisplayName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}
