package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// UploadSessionModel tracks a chunked upload in progress
type UploadSessionModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	SellerID      uint   `gorm:"not null;index:idx_upload_seller"`
	VersionID     uint   `gorm:"not null;index:idx_upload_version"`
	FileName      string `gorm:"not null;size:255"`
	StorageKey    string `gorm:"not null;size:500"`
	DeclaredSize  int64  `gorm:"not null"`
	ReceivedBytes int64  `gorm:"not null;default:0"`
	Status        string `gorm:"not null;default:open;size:20;index:idx_upload_status"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (UploadSessionModel) TableName() string {
	return constants.TableUploadSessions
}
