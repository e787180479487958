// Package review models buyer reviews and their moderation lifecycle. Only
// approved reviews feed a product's public rating aggregates.
package review

import (
	"fmt"
	"strings"
	"time"
)

// Status is the moderation state of a review.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const maxCommentLength = 4000

// Review is one buyer's rating of a purchased product. One review per buyer
// per product, enforced by a unique index.
type Review struct {
	id        uint
	sid       string
	userID    uint
	productID uint
	rating    int
	title     string
	comment   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReview creates a pending review.
func NewReview(sid string, userID, productID uint, rating int, title, comment string) (*Review, error) {
	if sid == "" {
		return nil, fmt.Errorf("review SID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if err := validateContent(rating, comment); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Review{
		sid:       sid,
		userID:    userID,
		productID: productID,
		rating:    rating,
		title:     strings.TrimSpace(title),
		comment:   strings.TrimSpace(comment),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReview reconstructs a review from persistence.
func ReconstructReview(id uint, sid string, userID, productID uint, rating int, title, comment string, status Status, createdAt, updatedAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid review status: %s", status)
	}

	return &Review{
		id:        id,
		sid:       sid,
		userID:    userID,
		productID: productID,
		rating:    rating,
		title:     title,
		comment:   comment,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint             { return r.id }
func (r *Review) SID() string          { return r.sid }
func (r *Review) UserID() uint         { return r.userID }
func (r *Review) ProductID() uint      { return r.productID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Title() string        { return r.title }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) Status() Status       { return r.status }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

// GetOwnerID implements authorization.OwnedResource.
func (r *Review) GetOwnerID() uint { return r.userID }

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// Edit replaces the review content and sends it back to moderation.
func (r *Review) Edit(rating int, title, comment string) error {
	if err := validateContent(rating, comment); err != nil {
		return err
	}
	r.rating = rating
	r.title = strings.TrimSpace(title)
	r.comment = strings.TrimSpace(comment)
	r.status = StatusPending
	r.updatedAt = time.Now()
	return nil
}

// Approve publishes the review.
func (r *Review) Approve() error {
	if r.status == StatusApproved {
		return fmt.Errorf("review is already approved")
	}
	r.status = StatusApproved
	r.updatedAt = time.Now()
	return nil
}

// Reject hides the review.
func (r *Review) Reject() error {
	if r.status == StatusRejected {
		return fmt.Errorf("review is already rejected")
	}
	r.status = StatusRejected
	r.updatedAt = time.Now()
	return nil
}

// IsApproved reports whether the review counts toward product aggregates.
func (r *Review) IsApproved() bool {
	return r.status == StatusApproved
}

func validateContent(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if len(comment) > maxCommentLength {
		return fmt.Errorf("comment cannot exceed %d characters", maxCommentLength)
	}
	return nil
}
