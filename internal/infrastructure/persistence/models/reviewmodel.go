package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// ReviewModel represents the database persistence model for reviews
type ReviewModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_review_user_product,priority:1"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_review_user_product,priority:2;index:idx_review_product"`
	Rating    int    `gorm:"not null"`
	Title     string `gorm:"size:200"`
	Comment   string `gorm:"type:text"`
	Status    string `gorm:"not null;default:pending;size:20;index:idx_review_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return constants.TableReviews
}
