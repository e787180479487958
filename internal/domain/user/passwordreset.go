package user

import (
	"fmt"
	"time"
)

// PasswordReset is a one-time credential for completing a password reset.
// The plain token only ever travels in the reset email; storage sees its hash.
type PasswordReset struct {
	id        uint
	userID    uint
	tokenHash string
	expiresAt time.Time
	usedAt    *time.Time
	createdAt time.Time
}

// NewPasswordReset creates a reset entry valid until expiresAt.
func NewPasswordReset(userID uint, tokenHash string, expiresAt time.Time) (*PasswordReset, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if !expiresAt.After(time.Now()) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &PasswordReset{
		userID:    userID,
		tokenHash: tokenHash,
		expiresAt: expiresAt,
		createdAt: time.Now(),
	}, nil
}

// ReconstructPasswordReset reconstructs a reset entry from persistence.
func ReconstructPasswordReset(id, userID uint, tokenHash string, expiresAt time.Time, usedAt *time.Time, createdAt time.Time) *PasswordReset {
	return &PasswordReset{
		id:        id,
		userID:    userID,
		tokenHash: tokenHash,
		expiresAt: expiresAt,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

func (p *PasswordReset) ID() uint             { return p.id }
func (p *PasswordReset) UserID() uint         { return p.userID }
func (p *PasswordReset) TokenHash() string    { return p.tokenHash }
func (p *PasswordReset) ExpiresAt() time.Time { return p.expiresAt }
func (p *PasswordReset) CreatedAt() time.Time { return p.createdAt }

func (p *PasswordReset) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("password reset ID already set")
	}
	p.id = id
	return nil
}

// IsUsable reports whether the token is unconsumed and unexpired at t.
func (p *PasswordReset) IsUsable(t time.Time) bool {
	return p.usedAt == nil && t.Before(p.expiresAt)
}
