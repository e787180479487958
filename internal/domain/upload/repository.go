package upload

import "context"

// Repository defines the interface for upload session persistence.
type Repository interface {
	// Create creates a new session
	Create(ctx context.Context, s *Session) error

	// Update updates an existing session
	Update(ctx context.Context, s *Session) error

	// GetBySID retrieves a session by public SID
	GetBySID(ctx context.Context, sid string) (*Session, error)
}
