package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// ProductModel represents the database persistence model for products
// This is the anti-corruption layer between domain and database
type ProductModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	SellerID      uint   `gorm:"not null;index:idx_product_seller"`
	Title         string `gorm:"not null;size:200"`
	Slug          string `gorm:"uniqueIndex;not null;size:120"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"not null;size:50;index:idx_product_category"`
	PriceCents    int64  `gorm:"not null;default:0"`
	Status        string `gorm:"not null;default:draft;size:20;index:idx_product_status"`
	AverageRating *float64
	ReviewCount   int            `gorm:"not null;default:0"`
	RatingDist    datatypes.JSON `gorm:"column:rating_dist"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
