// Package order models marketplace purchases and their payment lifecycle.
package order

import (
	"fmt"
	"time"
)

// Status is the payment lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRefunded, StatusFailed:
		return true
	}
	return false
}

// Order represents a buyer's purchase of one product version. Amounts are in
// the smallest currency unit; the platform fee is carved out of the total at
// checkout session creation, the remainder goes to the seller's creator
// account.
type Order struct {
	id               uint
	sid              string
	buyerID          uint
	sellerID         uint
	productID        uint
	versionID        uint
	amountCents      int64
	platformFeeCents int64
	currency         string
	status           Status
	gatewaySessionID *string
	paidAt           *time.Time
	refundedAt       *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewOrder creates a pending order.
func NewOrder(sid string, buyerID, sellerID, productID, versionID uint, amountCents, platformFeeCents int64, currency string) (*Order, error) {
	if sid == "" {
		return nil, fmt.Errorf("order SID is required")
	}
	if buyerID == 0 {
		return nil, fmt.Errorf("buyer ID is required")
	}
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if versionID == 0 {
		return nil, fmt.Errorf("version ID is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("order amount must be positive")
	}
	if platformFeeCents < 0 || platformFeeCents > amountCents {
		return nil, fmt.Errorf("platform fee must be between 0 and the order amount")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	now := time.Now()
	return &Order{
		sid:              sid,
		buyerID:          buyerID,
		sellerID:         sellerID,
		productID:        productID,
		versionID:        versionID,
		amountCents:      amountCents,
		platformFeeCents: platformFeeCents,
		currency:         currency,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructOrder reconstructs an order from persistence.
func ReconstructOrder(
	id uint,
	sid string,
	buyerID, sellerID, productID, versionID uint,
	amountCents, platformFeeCents int64,
	currency string,
	status Status,
	gatewaySessionID *string,
	paidAt, refundedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:               id,
		sid:              sid,
		buyerID:          buyerID,
		sellerID:         sellerID,
		productID:        productID,
		versionID:        versionID,
		amountCents:      amountCents,
		platformFeeCents: platformFeeCents,
		currency:         currency,
		status:           status,
		gatewaySessionID: gatewaySessionID,
		paidAt:           paidAt,
		refundedAt:       refundedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (o *Order) ID() uint                  { return o.id }
func (o *Order) SID() string               { return o.sid }
func (o *Order) BuyerID() uint             { return o.buyerID }
func (o *Order) SellerID() uint            { return o.sellerID }
func (o *Order) ProductID() uint           { return o.productID }
func (o *Order) VersionID() uint           { return o.versionID }
func (o *Order) AmountCents() int64        { return o.amountCents }
func (o *Order) PlatformFeeCents() int64   { return o.platformFeeCents }
func (o *Order) Currency() string          { return o.currency }
func (o *Order) Status() Status            { return o.status }
func (o *Order) GatewaySessionID() *string { return o.gatewaySessionID }
func (o *Order) PaidAt() *time.Time        { return o.paidAt }
func (o *Order) RefundedAt() *time.Time    { return o.refundedAt }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// GetOwnerID implements authorization.OwnedResource.
func (o *Order) GetOwnerID() uint { return o.buyerID }

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// AttachGatewaySession stores the checkout session created at the gateway.
func (o *Order) AttachGatewaySession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("gateway session ID is required")
	}
	o.gatewaySessionID = &sessionID
	o.updatedAt = time.Now()
	return nil
}

// Complete marks the order paid.
func (o *Order) Complete(paidAt time.Time) error {
	if o.status != StatusPending {
		return fmt.Errorf("cannot complete order in status %s", o.status)
	}
	o.status = StatusCompleted
	o.paidAt = &paidAt
	o.updatedAt = time.Now()
	return nil
}

// Refund marks a completed order refunded.
func (o *Order) Refund(refundedAt time.Time) error {
	if o.status != StatusCompleted {
		return fmt.Errorf("cannot refund order in status %s", o.status)
	}
	o.status = StatusRefunded
	o.refundedAt = &refundedAt
	o.updatedAt = time.Now()
	return nil
}

// Fail marks a pending order failed.
func (o *Order) Fail() error {
	if o.status != StatusPending {
		return fmt.Errorf("cannot fail order in status %s", o.status)
	}
	o.status = StatusFailed
	o.updatedAt = time.Now()
	return nil
}

// SellerAmountCents is the seller's share after the platform fee.
func (o *Order) SellerAmountCents() int64 {
	return o.amountCents - o.platformFeeCents
}
