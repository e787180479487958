package models

import (
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// SequenceFileModel represents a stored file attached to a product version
type SequenceFileModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"uniqueIndex;not null;size:32;column:sid"`
	VersionID  uint   `gorm:"not null;index:idx_file_version"`
	FileName   string `gorm:"not null;size:255"`
	StorageKey string `gorm:"not null;size:500"`
	SizeBytes  int64  `gorm:"not null"`
	Checksum   string `gorm:"not null;size:64;index:idx_file_checksum"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SequenceFileModel) TableName() string {
	return constants.TableSequenceFiles
}
