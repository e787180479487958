package mappers

import (
	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between domain entities and persistence models
type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) *models.OrderModel
	ToEntities(models []*models.OrderModel) ([]*order.Order, error)
}

type orderMapper struct{}

// NewOrderMapper creates a new order mapper
func NewOrderMapper() OrderMapper {
	return &orderMapper{}
}

func (m *orderMapper) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	return order.ReconstructOrder(
		model.ID,
		model.SID,
		model.BuyerID,
		model.SellerID,
		model.ProductID,
		model.VersionID,
		model.AmountCents,
		model.PlatformFeeCents,
		model.Currency,
		order.Status(model.Status),
		model.GatewaySessionID,
		model.PaidAt,
		model.RefundedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *orderMapper) ToModel(entity *order.Order) *models.OrderModel {
	if entity == nil {
		return nil
	}

	return &models.OrderModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		BuyerID:          entity.BuyerID(),
		SellerID:         entity.SellerID(),
		ProductID:        entity.ProductID(),
		VersionID:        entity.VersionID(),
		AmountCents:      entity.AmountCents(),
		PlatformFeeCents: entity.PlatformFeeCents(),
		Currency:         entity.Currency(),
		Status:           entity.Status().String(),
		GatewaySessionID: entity.GatewaySessionID(),
		PaidAt:           entity.PaidAt(),
		RefundedAt:       entity.RefundedAt(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *orderMapper) ToEntities(orderModels []*models.OrderModel) ([]*order.Order, error) {
	entities := make([]*order.Order, 0, len(orderModels))
	for _, model := range orderModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
