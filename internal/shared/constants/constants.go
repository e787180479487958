package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers           = "users"
	TableProducts        = "products"
	TableProductVersions = "product_versions"
	TableSequenceFiles   = "sequence_files"
	TableUploadSessions  = "upload_sessions"
	TableOrders          = "orders"
	TableEntitlements    = "entitlements"
	TableDownloadTokens  = "download_tokens"
	TableReviews         = "reviews"
	TableAuditLogs       = "audit_logs"
	TablePasswordResets  = "password_reset_tokens"

	// Audit actions
	AuditUserRegistered       = "USER_REGISTERED"
	AuditUserDeactivated      = "USER_DEACTIVATED"
	AuditProductApproved      = "PRODUCT_APPROVED"
	AuditProductRejected      = "PRODUCT_REJECTED"
	AuditFileUploaded         = "FILE_UPLOADED"
	AuditOrderCompleted       = "ORDER_COMPLETED"
	AuditOrderRefunded        = "ORDER_REFUNDED"
	AuditDownloadLinkIssued   = "DOWNLOAD_LINK_ISSUED"
	AuditDownloadAccessDenied = "DOWNLOAD_ACCESS_DENIED"
	AuditDownloadRateLimited  = "DOWNLOAD_RATE_LIMITED"
	AuditDownloadServed       = "DOWNLOAD_SERVED"
	AuditReviewApproved       = "REVIEW_APPROVED"
	AuditReviewRejected       = "REVIEW_REJECTED"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
