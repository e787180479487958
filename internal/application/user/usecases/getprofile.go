package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
)

// GetProfileUseCase returns the profile of an authenticated user
type GetProfileUseCase struct {
	userRepo user.Repository
}

// NewGetProfileUseCase creates a new get profile use case
func NewGetProfileUseCase(userRepo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute executes the get profile use case
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}
