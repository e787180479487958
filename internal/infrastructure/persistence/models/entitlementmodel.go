package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// EntitlementModel represents the database persistence model for entitlements
// This is the anti-corruption layer between domain and database
type EntitlementModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_user_product,priority:1;index:idx_entitlement_user"`
	ProductID      uint   `gorm:"not null;uniqueIndex:idx_user_product,priority:2"`
	VersionID      uint   `gorm:"not null"`
	OrderID        uint   `gorm:"not null;index:idx_entitlement_order"`
	IsActive       bool   `gorm:"not null;default:true"`
	DownloadCount  int    `gorm:"not null;default:0"`
	LastDownloadAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (EntitlementModel) TableName() string {
	return constants.TableEntitlements
}
