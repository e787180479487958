package dto

import "time"

// CreateCheckoutRequest opens a checkout session for a product
type CreateCheckoutRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"omitempty,url"`
	CancelURL  string `json:"cancel_url" binding:"omitempty,url"`
}

// CheckoutResponse carries the hosted checkout redirect
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	CheckoutURL string `json:"checkout_url"`
}

// StartOnboardingRequest starts payout onboarding for a seller
type StartOnboardingRequest struct {
	ReturnURL  string `json:"return_url" binding:"omitempty,url"`
	RefreshURL string `json:"refresh_url" binding:"omitempty,url"`
}

// OnboardingResponse carries the hosted onboarding redirect
type OnboardingResponse struct {
	OnboardingURL string `json:"onboarding_url"`
}

// ListOrdersRequest represents the order history query
type ListOrdersRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	SID              string     `json:"id"`
	BuyerID          uint       `json:"buyer_id"`
	SellerID         uint       `json:"seller_id"`
	ProductID        uint       `json:"product_id"`
	VersionID        uint       `json:"version_id"`
	AmountCents      int64      `json:"amount_cents"`
	PlatformFeeCents int64      `json:"platform_fee_cents"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	RefundedAt       *time.Time `json:"refunded_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
