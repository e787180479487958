package entitlement

import (
	"context"
	"time"
)

// Repository defines the interface for entitlement persistence operations.
type Repository interface {
	// Create creates a new entitlement
	Create(ctx context.Context, e *Entitlement) error

	// GetByID retrieves an entitlement by internal ID
	GetByID(ctx context.Context, id uint) (*Entitlement, error)

	// GetBySID retrieves an entitlement by public SID
	GetBySID(ctx context.Context, sid string) (*Entitlement, error)

	// GetByUser retrieves all entitlements for a user, newest first
	GetByUser(ctx context.Context, userID uint) ([]*Entitlement, error)

	// ExistsActiveForUserAndProduct checks for an active entitlement on a
	// user-product pair
	ExistsActiveForUserAndProduct(ctx context.Context, userID, productID uint) (bool, error)

	// RecordDownload atomically increments download_count and sets
	// last_download_at. The increment happens at the database level so
	// download_count stays monotonic under concurrent requests.
	RecordDownload(ctx context.Context, id uint, at time.Time) error

	// DeactivateByOrder deactivates all entitlements sourced from an order.
	// Used on refund; rows are never deleted.
	DeactivateByOrder(ctx context.Context, orderID uint) error
}

// DownloadTokenRepository persists one-time download tokens.
type DownloadTokenRepository interface {
	// Create creates a new token row
	Create(ctx context.Context, t *DownloadToken) error

	// GetByTokenHash retrieves a token by its hash
	GetByTokenHash(ctx context.Context, tokenHash string) (*DownloadToken, error)

	// ConsumeByTokenHash marks the token used if, and only if, it is still
	// unused and unexpired at time now. Returns the consumed token, or
	// ErrTokenAlreadyUsed / ErrTokenExpired.
	ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*DownloadToken, error)

	// DeleteExpired removes tokens whose expiry is older than before.
	// Housekeeping only; expiry is enforced at consume time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
