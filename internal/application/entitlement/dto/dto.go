package dto

import "time"

// IssueDownloadLinkRequest asks for one-time links to every file in a
// purchased version
type IssueDownloadLinkRequest struct {
	EntitlementID string `json:"entitlement_id" binding:"required"`
	VersionID     string `json:"version_id" binding:"required"`
}

// DownloadLinkResponse carries the single-use download URL for one file. The
// token in the URL is shown exactly once and expires quickly.
type DownloadLinkResponse struct {
	FileID    string    `json:"file_id"`
	FileName  string    `json:"file_name"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DownloadLinksResponse bundles one link per file in the requested version
type DownloadLinksResponse struct {
	Links []DownloadLinkResponse `json:"links"`
}

// EntitlementResponse represents an entitlement in API responses
type EntitlementResponse struct {
	SID            string     `json:"id"`
	ProductID      uint       `json:"product_id"`
	VersionID      uint       `json:"version_id"`
	IsActive       bool       `json:"is_active"`
	DownloadCount  int        `json:"download_count"`
	LastDownloadAt *time.Time `json:"last_download_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
