package usecases

import (
	"github.com/sequencehub/sequencehub/internal/infrastructure/auth"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and validates JWT session tokens.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
}

// ResetTokenGenerator produces opaque reset tokens and their stored hashes.
type ResetTokenGenerator interface {
	Generate() (plaintext, hash string, err error)
}

// EmailSender sends the account lifecycle emails.
type EmailSender interface {
	SendWelcomeEmail(to, displayName string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}
