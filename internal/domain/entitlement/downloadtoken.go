package entitlement

import (
	"fmt"
	"time"
)

// DefaultTokenTTL bounds a download link's validity.
const DefaultTokenTTL = 5 * time.Minute

// DownloadToken is a one-time capability binding a user, entitlement, and
// file to an opaque random token. Only the SHA-256 hash of the token is
// stored; the plain value appears once, in the issued URL.
type DownloadToken struct {
	id            uint
	tokenHash     string
	userID        uint
	entitlementID uint
	fileID        uint
	storageKey    string
	expiresAt     time.Time
	usedAt        *time.Time
	createdAt     time.Time
}

// NewDownloadToken creates a token valid for ttl from now.
func NewDownloadToken(tokenHash string, userID, entitlementID, fileID uint, storageKey string, ttl time.Duration) (*DownloadToken, error) {
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if entitlementID == 0 {
		return nil, fmt.Errorf("entitlement ID is required")
	}
	if fileID == 0 {
		return nil, fmt.Errorf("file ID is required")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now()
	return &DownloadToken{
		tokenHash:     tokenHash,
		userID:        userID,
		entitlementID: entitlementID,
		fileID:        fileID,
		storageKey:    storageKey,
		expiresAt:     now.Add(ttl),
		createdAt:     now,
	}, nil
}

// ReconstructDownloadToken reconstructs a token from persistence.
func ReconstructDownloadToken(
	id uint,
	tokenHash string,
	userID, entitlementID, fileID uint,
	storageKey string,
	expiresAt time.Time,
	usedAt *time.Time,
	createdAt time.Time,
) (*DownloadToken, error) {
	if id == 0 {
		return nil, fmt.Errorf("download token ID cannot be zero")
	}
	return &DownloadToken{
		id:            id,
		tokenHash:     tokenHash,
		userID:        userID,
		entitlementID: entitlementID,
		fileID:        fileID,
		storageKey:    storageKey,
		expiresAt:     expiresAt,
		usedAt:        usedAt,
		createdAt:     createdAt,
	}, nil
}

func (t *DownloadToken) ID() uint             { return t.id }
func (t *DownloadToken) TokenHash() string    { return t.tokenHash }
func (t *DownloadToken) UserID() uint         { return t.userID }
func (t *DownloadToken) EntitlementID() uint  { return t.entitlementID }
func (t *DownloadToken) FileID() uint         { return t.fileID }
func (t *DownloadToken) StorageKey() string   { return t.storageKey }
func (t *DownloadToken) ExpiresAt() time.Time { return t.expiresAt }
func (t *DownloadToken) UsedAt() *time.Time   { return t.usedAt }
func (t *DownloadToken) CreatedAt() time.Time { return t.createdAt }

func (t *DownloadToken) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("download token ID already set")
	}
	if id == 0 {
		return fmt.Errorf("download token ID cannot be zero")
	}
	t.id = id
	return nil
}

// Validate checks expiry and single-use at time now.
func (t *DownloadToken) Validate(now time.Time) error {
	if t.usedAt != nil {
		return ErrTokenAlreadyUsed
	}
	if now.After(t.expiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// MarkUsed consumes the token. The repository enforces the same transition
// with a conditional update so concurrent requests cannot both win.
func (t *DownloadToken) MarkUsed(at time.Time) error {
	if t.usedAt != nil {
		return ErrTokenAlreadyUsed
	}
	t.usedAt = &at
	return nil
}
