package dto

import "time"

// ListAuditLogsRequest represents the request to query the audit trail
type ListAuditLogsRequest struct {
	Action     string `form:"action"`
	UserID     uint   `form:"user_id"`
	EntityType string `form:"entity_type"`
	EntityID   string `form:"entity_id"`
	StartAt    string `form:"start_at"` // RFC3339
	EndAt      string `form:"end_at"`   // RFC3339
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// AuditLogResponse represents a single audit trail entry
type AuditLogResponse struct {
	ID         uint           `json:"id"`
	Action     string         `json:"action"`
	UserID     *uint          `json:"user_id,omitempty"`
	EntityType string         `json:"entity_type,omitempty"`
	EntityID   string         `json:"entity_id,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
