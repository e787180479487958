package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/order"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/db"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// OrderRepository implements the order repository interface with DDD patterns
type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create order", "buyer_id", model.BuyerID, "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	r.logger.Infow("order created", "id", model.ID, "sid", model.SID, "amount_cents", model.AmountCents)
	return nil
}

// Update updates an existing order
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"gateway_session_id": model.GatewaySessionID,
			"paid_at":            model.PaidAt,
			"refunded_at":        model.RefundedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update order", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}

	return nil
}

// GetByID retrieves an order by internal ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves an order by public SID
func (r *OrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByGatewaySession retrieves an order by its checkout session ID
func (r *OrderRepository) GetByGatewaySession(ctx context.Context, sessionID string) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).Where("gateway_session_id = ?", sessionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves a paginated, filtered order listing
func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

	if filter.BuyerID != 0 {
		query = query.Where("buyer_id = ?", filter.BuyerID)
	}
	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orderModels []*models.OrderModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map orders: %w", err)
	}

	return entities, total, nil
}
