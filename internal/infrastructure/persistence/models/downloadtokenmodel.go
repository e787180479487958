package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// DownloadTokenModel stores only the hash of issued download tokens
type DownloadTokenModel struct {
	ID            uint      `gorm:"primarykey"`
	TokenHash     string    `gorm:"uniqueIndex;not null;size:64"`
	UserID        uint      `gorm:"not null;index:idx_token_user"`
	EntitlementID uint      `gorm:"not null"`
	FileID        uint      `gorm:"not null"`
	StorageKey    string    `gorm:"not null;size:500"`
	ExpiresAt     time.Time `gorm:"not null;index:idx_token_expires"`
	UsedAt        *time.Time
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (DownloadTokenModel) TableName() string {
	return constants.TableDownloadTokens
}
