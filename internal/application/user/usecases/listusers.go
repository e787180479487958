package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
)

// ListUsersUseCase lists users for administrators
type ListUsersUseCase struct {
	userRepo user.Repository
}

// NewListUsersUseCase creates a new list users use case
func NewListUsersUseCase(userRepo user.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute executes the list users use case
func (uc *ListUsersUseCase) Execute(ctx context.Context, request dto.ListUsersRequest) ([]*dto.UserResponse, int64, error) {
	filter := user.ListFilter{
		Role:     request.Role,
		IsActive: request.IsActive,
		Search:   request.Search,
		Page:     request.Page,
		PageSize: request.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses, total, nil
}
