// Package entitlement models a buyer's purchased right to download a
// product version, and the short-lived tokens that gate actual file serving.
package entitlement

import (
	"fmt"
	"time"
)

// Entitlement represents the entitlement aggregate root. It is created when
// an order completes, deactivated (never deleted) on refund, and mutated on
// every successful download-link issuance.
type Entitlement struct {
	id             uint
	sid            string
	userID         uint
	productID      uint
	versionID      uint
	orderID        uint
	isActive       bool
	downloadCount  int
	lastDownloadAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewEntitlement creates an active entitlement sourced from a completed order.
func NewEntitlement(sid string, userID, productID, versionID, orderID uint) (*Entitlement, error) {
	if sid == "" {
		return nil, fmt.Errorf("entitlement SID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if versionID == 0 {
		return nil, fmt.Errorf("version ID is required")
	}
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}

	now := time.Now()
	return &Entitlement{
		sid:       sid,
		userID:    userID,
		productID: productID,
		versionID: versionID,
		orderID:   orderID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructEntitlement reconstructs an entitlement from persistence.
func ReconstructEntitlement(
	id uint,
	sid string,
	userID, productID, versionID, orderID uint,
	isActive bool,
	downloadCount int,
	lastDownloadAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Entitlement, error) {
	if id == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if downloadCount < 0 {
		return nil, fmt.Errorf("download count cannot be negative")
	}

	return &Entitlement{
		id:             id,
		sid:            sid,
		userID:         userID,
		productID:      productID,
		versionID:      versionID,
		orderID:        orderID,
		isActive:       isActive,
		downloadCount:  downloadCount,
		lastDownloadAt: lastDownloadAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (e *Entitlement) ID() uint                   { return e.id }
func (e *Entitlement) SID() string                { return e.sid }
func (e *Entitlement) UserID() uint               { return e.userID }
func (e *Entitlement) ProductID() uint            { return e.productID }
func (e *Entitlement) VersionID() uint            { return e.versionID }
func (e *Entitlement) OrderID() uint              { return e.orderID }
func (e *Entitlement) IsActive() bool             { return e.isActive }
func (e *Entitlement) DownloadCount() int         { return e.downloadCount }
func (e *Entitlement) LastDownloadAt() *time.Time { return e.lastDownloadAt }
func (e *Entitlement) CreatedAt() time.Time       { return e.createdAt }
func (e *Entitlement) UpdatedAt() time.Time       { return e.updatedAt }

// GetOwnerID implements authorization.OwnedResource.
func (e *Entitlement) GetOwnerID() uint { return e.userID }

func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}

// CheckDownloadAllowed applies the per-entitlement daily download cap.
//
// The window arithmetic mirrors the marketplace's historical behavior: the
// counter is considered reset as soon as a full day has elapsed since the
// previous download, not at a fixed calendar boundary, so behavior near day
// boundaries is uneven. Kept as-is pending a product decision; see DESIGN.md.
func (e *Entitlement) CheckDownloadAllowed(now time.Time, dailyLimit int) error {
	if !e.isActive {
		return ErrEntitlementInactive
	}
	if dailyLimit <= 0 || e.lastDownloadAt == nil {
		return nil
	}

	daysSinceReset := int(now.Sub(*e.lastDownloadAt).Hours() / 24)
	if daysSinceReset < 1 && e.downloadCount >= dailyLimit {
		return ErrDownloadLimitReached
	}
	return nil
}

// RecordDownload advances the monotonic download counters. The persistence
// layer must apply the increment atomically; this keeps the in-memory
// aggregate consistent with what was written.
func (e *Entitlement) RecordDownload(at time.Time) {
	e.downloadCount++
	e.lastDownloadAt = &at
	e.updatedAt = at
}

// Deactivate revokes access, typically after a refund. Entitlement rows are
// never hard-deleted.
func (e *Entitlement) Deactivate() {
	e.isActive = false
	e.updatedAt = time.Now()
}
