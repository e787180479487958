package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders
type OrderModel struct {
	ID               uint    `gorm:"primarykey"`
	SID              string  `gorm:"uniqueIndex;not null;size:32;column:sid"`
	BuyerID          uint    `gorm:"not null;index:idx_order_buyer"`
	SellerID         uint    `gorm:"not null;index:idx_order_seller"`
	ProductID        uint    `gorm:"not null;index:idx_order_product"`
	VersionID        uint    `gorm:"not null"`
	AmountCents      int64   `gorm:"not null"`
	PlatformFeeCents int64   `gorm:"not null"`
	Currency         string  `gorm:"not null;size:10"`
	Status           string  `gorm:"not null;default:pending;size:20;index:idx_order_status"`
	GatewaySessionID *string `gorm:"size:255;index:idx_order_gateway_session"`
	PaidAt           *time.Time
	RefundedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}
