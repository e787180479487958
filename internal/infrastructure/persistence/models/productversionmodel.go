package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// ProductVersionModel represents a published revision of a product
type ProductVersionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	ProductID uint   `gorm:"not null;index:idx_version_product;uniqueIndex:idx_product_label,priority:1"`
	Label     string `gorm:"not null;size:20;uniqueIndex:idx_product_label,priority:2"`
	Changelog string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProductVersionModel) TableName() string {
	return constants.TableProductVersions
}
