package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sequencehub/sequencehub/internal/shared/constants"
)

// AuditLogModel represents an append-only audit trail entry
type AuditLogModel struct {
	ID         uint   `gorm:"primarykey"`
	Action     string `gorm:"not null;size:50;index:idx_audit_action"`
	UserID     *uint  `gorm:"index:idx_audit_user"`
	EntityType string `gorm:"size:50;index:idx_audit_entity,priority:1"`
	EntityID   string `gorm:"size:64;index:idx_audit_entity,priority:2"`
	IPAddress  string `gorm:"size:45"`
	UserAgent  string `gorm:"size:500"`
	Metadata   datatypes.JSON
	CreatedAt  time.Time `gorm:"index:idx_audit_created"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
