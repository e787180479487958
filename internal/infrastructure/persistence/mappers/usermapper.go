package mappers

import (
	"fmt"

	"github.com/sequencehub/sequencehub/internal/domain/user"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	return user.ReconstructUser(
		model.ID,
		email,
		model.DisplayName,
		role,
		model.PasswordHash,
		model.IsActive,
		model.CreatorAccountID,
		model.PayoutsEnabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:               entity.ID(),
		Email:            entity.Email().String(),
		DisplayName:      entity.DisplayName(),
		Role:             entity.Role().String(),
		PasswordHash:     entity.PasswordHash(),
		IsActive:         entity.IsActive(),
		CreatorAccountID: entity.CreatorAccountID(),
		PayoutsEnabled:   entity.PayoutsEnabled(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
