// Package audit models the append-only audit trail. Entries exist for
// after-the-fact investigation, not for enforcing correctness: writers treat
// failures as best-effort and never propagate them into the primary request.
package audit

import (
	"fmt"
	"time"
)

// Entry is one append-only audit record. Entries are never updated or deleted.
type Entry struct {
	id         uint
	action     string
	userID     *uint
	entityType string
	entityID   string
	ipAddress  string
	userAgent  string
	metadata   map[string]any
	createdAt  time.Time
}

// NewEntry creates an audit entry for an action against an entity.
func NewEntry(action string, userID *uint, entityType, entityID string, metadata map[string]any) (*Entry, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityType == "" {
		entityType = "unknown"
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Entry{
		action:     action,
		userID:     userID,
		entityType: entityType,
		entityID:   entityID,
		metadata:   metadata,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructEntry reconstructs an entry from persistence.
func ReconstructEntry(id uint, action string, userID *uint, entityType, entityID, ipAddress, userAgent string, metadata map[string]any, createdAt time.Time) *Entry {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Entry{
		id:         id,
		action:     action,
		userID:     userID,
		entityType: entityType,
		entityID:   entityID,
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		metadata:   metadata,
		createdAt:  createdAt,
	}
}

func (e *Entry) ID() uint                 { return e.id }
func (e *Entry) Action() string           { return e.action }
func (e *Entry) UserID() *uint            { return e.userID }
func (e *Entry) EntityType() string       { return e.entityType }
func (e *Entry) EntityID() string         { return e.entityID }
func (e *Entry) IPAddress() string        { return e.ipAddress }
func (e *Entry) UserAgent() string        { return e.userAgent }
func (e *Entry) Metadata() map[string]any { return e.metadata }
func (e *Entry) CreatedAt() time.Time     { return e.createdAt }

// SetRequestContext attaches the caller's network details.
func (e *Entry) SetRequestContext(ipAddress, userAgent string) {
	e.ipAddress = ipAddress
	e.userAgent = userAgent
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID already set")
	}
	e.id = id
	return nil
}
