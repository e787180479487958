package user

import "context"

// ListFilter narrows user listings.
type ListFilter struct {
	Role     string
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

// Repository defines the interface for user persistence operations.
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// GetByCreatorAccount retrieves a user by linked creator account ID
	GetByCreatorAccount(ctx context.Context, accountID string) (*User, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves a paginated list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// PasswordResetRepository stores one-time password reset tokens.
// Only the SHA-256 hash of a token is ever persisted.
type PasswordResetRepository interface {
	// Save stores a reset token hash for the user, replacing any previous one.
	Save(ctx context.Context, reset *PasswordReset) error

	// GetByTokenHash retrieves an unconsumed reset entry by token hash.
	GetByTokenHash(ctx context.Context, tokenHash string) (*PasswordReset, error)

	// Consume marks the reset entry as used.
	Consume(ctx context.Context, id uint) error
}
