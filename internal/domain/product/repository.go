package product

import "context"

// ListFilter narrows product listings.
type ListFilter struct {
	SellerID uint
	Category string
	Status   string
	Search   string
	Page     int
	PageSize int
}

// Repository defines the interface for product persistence operations.
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, p *Product) error

	// Update updates an existing product
	Update(ctx context.Context, p *Product) error

	// GetByID retrieves a product by internal ID
	GetByID(ctx context.Context, id uint) (*Product, error)

	// GetBySID retrieves a product by public SID
	GetBySID(ctx context.Context, sid string) (*Product, error)

	// GetBySlug retrieves a product by slug
	GetBySlug(ctx context.Context, slug string) (*Product, error)

	// ExistsBySlug checks if a product with the slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// List retrieves a paginated, filtered product listing
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)

	// UpdateRatingSummary persists only the denormalized review aggregates
	UpdateRatingSummary(ctx context.Context, productID uint, summary RatingSummary) error
}

// VersionRepository persists product versions.
type VersionRepository interface {
	// Create creates a new version
	Create(ctx context.Context, v *Version) error

	// GetByID retrieves a version by internal ID
	GetByID(ctx context.Context, id uint) (*Version, error)

	// GetBySID retrieves a version by public SID
	GetBySID(ctx context.Context, sid string) (*Version, error)

	// GetByProduct retrieves all versions for a product, newest first
	GetByProduct(ctx context.Context, productID uint) ([]*Version, error)

	// GetLatestByProduct retrieves the newest version for a product
	GetLatestByProduct(ctx context.Context, productID uint) (*Version, error)
}

// FileRepository persists sequence file records.
type FileRepository interface {
	// Create creates a new file record
	Create(ctx context.Context, f *SequenceFile) error

	// GetByID retrieves a file by internal ID
	GetByID(ctx context.Context, id uint) (*SequenceFile, error)

	// GetBySID retrieves a file by public SID
	GetBySID(ctx context.Context, sid string) (*SequenceFile, error)

	// GetByVersion retrieves all files in a version
	GetByVersion(ctx context.Context, versionID uint) ([]*SequenceFile, error)

	// GetByStorageKey retrieves a file by its storage key
	GetByStorageKey(ctx context.Context, storageKey string) (*SequenceFile, error)

	// FindByChecksumForSeller finds an existing file with the checksum owned
	// by the seller, for upload deduplication. Returns nil when absent.
	FindByChecksumForSeller(ctx context.Context, sellerID uint, checksum string) (*SequenceFile, error)
}
