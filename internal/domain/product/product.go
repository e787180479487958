package product

import (
	"fmt"
	"time"

	vo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
)

// Product represents a sequence listing aggregate root. A product is owned by
// a seller, carries versioned file bundles, and holds denormalized review
// aggregates maintained by the review module.
type Product struct {
	id          uint
	sid         string
	sellerID    uint
	title       string
	slug        *vo.Slug
	description string
	category    string
	priceCents  int64
	status      vo.Status
	rating      RatingSummary
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a draft product for a seller.
func NewProduct(sid string, sellerID uint, title, description, category string, priceCents int64) (*Product, error) {
	if sid == "" {
		return nil, fmt.Errorf("product SID is required")
	}
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	slug, err := vo.SlugFromTitle(title)
	if err != nil {
		return nil, fmt.Errorf("cannot derive slug from title: %w", err)
	}

	now := time.Now()
	return &Product{
		sid:         sid,
		sellerID:    sellerID,
		title:       title,
		slug:        slug,
		description: description,
		category:    category,
		priceCents:  priceCents,
		status:      vo.StatusDraft,
		rating:      SummarizeRatings(nil),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct reconstructs a product from persistence.
func ReconstructProduct(
	id uint,
	sid string,
	sellerID uint,
	title string,
	slug *vo.Slug,
	description, category string,
	priceCents int64,
	status vo.Status,
	rating RatingSummary,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if slug == nil {
		return nil, fmt.Errorf("slug is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid product status: %s", status)
	}

	if rating.Distribution == nil {
		rating.Distribution = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}

	return &Product{
		id:          id,
		sid:         sid,
		sellerID:    sellerID,
		title:       title,
		slug:        slug,
		description: description,
		category:    category,
		priceCents:  priceCents,
		status:      status,
		rating:      rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) ID() uint               { return p.id }
func (p *Product) SID() string            { return p.sid }
func (p *Product) SellerID() uint         { return p.sellerID }
func (p *Product) Title() string          { return p.title }
func (p *Product) Slug() *vo.Slug         { return p.slug }
func (p *Product) Description() string    { return p.description }
func (p *Product) Category() string       { return p.category }
func (p *Product) PriceCents() int64      { return p.priceCents }
func (p *Product) Status() vo.Status      { return p.status }
func (p *Product) Rating() RatingSummary  { return p.rating }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// GetOwnerID implements authorization.OwnedResource.
func (p *Product) GetOwnerID() uint { return p.sellerID }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update changes listing fields. An approved product returns to pending so
// edits pass moderation again.
func (p *Product) Update(title, description, category string, priceCents int64) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	p.title = title
	p.description = description
	p.category = category
	p.priceCents = priceCents

	if p.status == vo.StatusApproved {
		p.status = vo.StatusPending
	}
	p.updatedAt = time.Now()
	return nil
}

// SubmitForReview moves a draft or rejected product into the moderation queue.
func (p *Product) SubmitForReview() error {
	return p.transition(vo.StatusPending)
}

// Approve marks the product publicly purchasable.
func (p *Product) Approve() error {
	return p.transition(vo.StatusApproved)
}

// Reject declines the listing.
func (p *Product) Reject() error {
	return p.transition(vo.StatusRejected)
}

// Archive removes the listing from the marketplace. Existing entitlements
// survive archival.
func (p *Product) Archive() error {
	return p.transition(vo.StatusArchived)
}

func (p *Product) transition(next vo.Status) error {
	if !p.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition product from %s to %s", p.status, next)
	}
	p.status = next
	p.updatedAt = time.Now()
	return nil
}

// ApplyRatingSummary replaces the denormalized review aggregates.
func (p *Product) ApplyRatingSummary(summary RatingSummary) {
	if summary.Distribution == nil {
		summary.Distribution = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}
	p.rating = summary
	p.updatedAt = time.Now()
}

// IsPurchasable reports whether buyers may order the product.
func (p *Product) IsPurchasable() bool {
	return p.status.IsPurchasable()
}
