package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID               uint    `gorm:"primarykey"`
	Email            string  `gorm:"uniqueIndex;not null;size:255"`
	DisplayName      string  `gorm:"not null;size:100"`
	Role             string  `gorm:"not null;default:buyer;size:20;index:idx_role"`
	PasswordHash     string  `gorm:"not null;size:255"`
	IsActive         bool    `gorm:"not null;default:true"`
	CreatorAccountID *string `gorm:"size:255;index:idx_creator_account"`
	PayoutsEnabled   bool    `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
