package audit

import (
	"context"
	"time"
)

// ListFilter narrows audit log queries.
type ListFilter struct {
	Action     string
	UserID     uint
	EntityType string
	EntityID   string
	StartAt    *time.Time
	EndAt      *time.Time
	Page       int
	PageSize   int
}

// Repository defines the interface for audit log persistence. Insert-only.
type Repository interface {
	// Insert appends an entry
	Insert(ctx context.Context, e *Entry) error

	// List retrieves a paginated, filtered slice of the trail, newest first
	List(ctx context.Context, filter ListFilter) ([]*Entry, int64, error)
}
