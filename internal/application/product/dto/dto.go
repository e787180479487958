package dto

import "time"

// CreateProductRequest represents the request to create a draft listing
type CreateProductRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"max=20000"`
	Category    string `json:"category" binding:"required,max=100"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

// UpdateProductRequest represents the request to edit a listing
type UpdateProductRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"max=20000"`
	Category    string `json:"category" binding:"required,max=100"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

// ModerateProductRequest represents an admin moderation decision
type ModerateProductRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Reason   string `json:"reason" binding:"max=1000"`
}

// CreateVersionRequest represents the request to publish a new version
type CreateVersionRequest struct {
	Label     string `json:"label" binding:"required,max=20"`
	Changelog string `json:"changelog" binding:"max=5000"`
}

// ListProductsRequest represents the public catalog query
type ListProductsRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ListSellerProductsRequest represents the seller dashboard query
type ListSellerProductsRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// RatingSummaryResponse carries the denormalized review aggregates
type RatingSummaryResponse struct {
	AverageRating *float64    `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
	Distribution  map[int]int `json:"distribution"`
}

// ProductResponse represents a product in list responses
type ProductResponse struct {
	SID        string                `json:"id"`
	SellerID   uint                  `json:"seller_id"`
	Title      string                `json:"title"`
	Slug       string                `json:"slug"`
	Category   string                `json:"category"`
	PriceCents int64                 `json:"price_cents"`
	Status     string                `json:"status"`
	Rating     RatingSummaryResponse `json:"rating"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// VersionResponse represents a product version
type VersionResponse struct {
	SID       string         `json:"id"`
	Label     string         `json:"label"`
	Changelog string         `json:"changelog"`
	CreatedAt time.Time      `json:"created_at"`
	Files     []FileResponse `json:"files,omitempty"`
}

// FileResponse represents a downloadable file inside a version
type FileResponse struct {
	SID       string    `json:"id"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDetailResponse represents the full product page payload. The
// description is rendered markdown, sanitized for embedding.
type ProductDetailResponse struct {
	ProductResponse
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	Versions        []VersionResponse `json:"versions"`
}
