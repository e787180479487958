package dto

// InitUploadRequest opens a chunked upload session against a version
type InitUploadRequest struct {
	VersionID string `json:"version_id" binding:"required"`
	FileName  string `json:"file_name" binding:"required,max=255"`
	SizeBytes int64  `json:"size_bytes" binding:"required,min=1"`
}

// UploadSessionResponse represents the state of an upload session
type UploadSessionResponse struct {
	SID           string `json:"id"`
	FileName      string `json:"file_name"`
	DeclaredSize  int64  `json:"declared_size"`
	ReceivedBytes int64  `json:"received_bytes"`
	Status        string `json:"status"`
}

// CompleteUploadResponse represents the file produced by a finished upload.
// Deduplicated is true when an identical file already existed for the seller
// and its storage object was reused.
type CompleteUploadResponse struct {
	FileSID      string `json:"file_id"`
	FileName     string `json:"file_name"`
	SizeBytes    int64  `json:"size_bytes"`
	Checksum     string `json:"checksum"`
	Deduplicated bool   `json:"deduplicated"`
}
