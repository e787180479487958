package dto

import "time"

// CreateReviewRequest posts a review on a purchased product
type CreateReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title" binding:"max=200"`
	Comment   string `json:"comment" binding:"max=4000"`
}

// UpdateReviewRequest edits an existing review
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"max=200"`
	Comment string `json:"comment" binding:"max=4000"`
}

// ModerateReviewRequest represents an admin moderation decision
type ModerateReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

// ListReviewsRequest represents a review listing query
type ListReviewsRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	SID       string    `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
