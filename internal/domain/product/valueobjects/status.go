package valueobjects

// Status is the moderation lifecycle state of a product.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// IsPurchasable reports whether buyers may see and buy the product.
func (s Status) IsPurchasable() bool {
	return s == StatusApproved
}

// CanTransitionTo enforces the moderation state machine:
// draft -> pending -> approved|rejected, rejected -> pending (resubmit),
// approved -> archived, anything -> archived by the seller.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPending || next == StatusArchived
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusArchived
	case StatusRejected:
		return next == StatusPending || next == StatusArchived
	case StatusApproved:
		return next == StatusArchived
	case StatusArchived:
		return false
	}
	return false
}
