package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// PasswordResetTokenModel stores only the hash of issued reset tokens
type PasswordResetTokenModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_reset_user"`
	TokenHash string `gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (PasswordResetTokenModel) TableName() string {
	return constants.TablePasswordResets
}
