package entitlement

import "errors"

var (
	// ErrEntitlementInactive is returned when a revoked entitlement is used.
	ErrEntitlementInactive = errors.New("entitlement is not active")

	// ErrDownloadLimitReached is returned when the daily download cap is hit.
	ErrDownloadLimitReached = errors.New("daily download limit reached for this entitlement")

	// ErrTokenExpired is returned when a download token is past its expiry.
	ErrTokenExpired = errors.New("download token has expired")

	// ErrTokenAlreadyUsed is returned on a second use of a one-time token.
	ErrTokenAlreadyUsed = errors.New("download token has already been used")
)
