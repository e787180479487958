package user

import (
	"fmt"
	"time"

	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns).
// Sellers additionally carry a creator account at the payment gateway for payouts.
type User struct {
	id               uint
	email            *vo.Email
	displayName      string
	role             authorization.UserRole
	passwordHash     string
	isActive         bool
	creatorAccountID *string
	payoutsEnabled   bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewUser creates a new active user aggregate.
func NewUser(email *vo.Email, displayName string, role authorization.UserRole, passwordHash string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		displayName:  displayName,
		role:         role,
		passwordHash: passwordHash,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	email *vo.Email,
	displayName string,
	role authorization.UserRole,
	passwordHash string,
	isActive bool,
	creatorAccountID *string,
	payoutsEnabled bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:               id,
		email:            email,
		displayName:      displayName,
		role:             role,
		passwordHash:     passwordHash,
		isActive:         isActive,
		creatorAccountID: creatorAccountID,
		payoutsEnabled:   payoutsEnabled,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint                         { return u.id }
func (u *User) Email() *vo.Email                 { return u.email }
func (u *User) DisplayName() string              { return u.displayName }
func (u *User) Role() authorization.UserRole     { return u.role }
func (u *User) PasswordHash() string             { return u.passwordHash }
func (u *User) IsActive() bool                   { return u.isActive }
func (u *User) CreatorAccountID() *string        { return u.creatorAccountID }
func (u *User) PayoutsEnabled() bool             { return u.payoutsEnabled }
func (u *User) CreatedAt() time.Time             { return u.createdAt }
func (u *User) UpdatedAt() time.Time             { return u.updatedAt }

// SetID assigns the persistence ID after insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the mutable profile fields.
func (u *User) UpdateProfile(displayName string) error {
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	u.displayName = displayName
	u.updatedAt = time.Now()
	return nil
}

// ChangePassword sets a new password hash.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

// Deactivate disables the account. Deactivated users cannot authenticate.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// Activate re-enables the account.
func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// LinkCreatorAccount records the payment gateway account used for payouts.
func (u *User) LinkCreatorAccount(accountID string) error {
	if accountID == "" {
		return fmt.Errorf("creator account ID is required")
	}
	if !u.role.IsSeller() {
		return ErrNotASeller
	}
	u.creatorAccountID = &accountID
	u.updatedAt = time.Now()
	return nil
}

// EnablePayouts marks creator onboarding as complete.
func (u *User) EnablePayouts() error {
	if u.creatorAccountID == nil {
		return fmt.Errorf("no creator account linked")
	}
	u.payoutsEnabled = true
	u.updatedAt = time.Now()
	return nil
}

// CanReceivePayments reports whether the seller finished creator onboarding.
func (u *User) CanReceivePayments() bool {
	return u.creatorAccountID != nil && u.payoutsEnabled
}
