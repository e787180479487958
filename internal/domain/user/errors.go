package user

import "errors"

var (
	// ErrNotASeller is returned when a payout operation targets a buyer account.
	ErrNotASeller = errors.New("user is not a seller")

	// ErrInvalidCredentials is returned for a wrong email/password pair.
	// Deliberately indistinguishable between the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when a deactivated account authenticates.
	ErrAccountDisabled = errors.New("account is disabled")
)
