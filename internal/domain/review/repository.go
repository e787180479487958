package review

import "context"

// ListFilter narrows review listings.
type ListFilter struct {
	ProductID uint
	UserID    uint
	Status    string
	Page      int
	PageSize  int
}

// Repository defines the interface for review persistence operations.
type Repository interface {
	// Create creates a new review
	Create(ctx context.Context, r *Review) error

	// Update updates an existing review
	Update(ctx context.Context, r *Review) error

	// Delete removes a review
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a review by internal ID
	GetByID(ctx context.Context, id uint) (*Review, error)

	// GetBySID retrieves a review by public SID
	GetBySID(ctx context.Context, sid string) (*Review, error)

	// GetByUserAndProduct retrieves a user's review of a product
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*Review, error)

	// ExistsByUserAndProduct checks for a user's review of a product
	ExistsByUserAndProduct(ctx context.Context, userID, productID uint) (bool, error)

	// List retrieves a paginated, filtered review listing
	List(ctx context.Context, filter ListFilter) ([]*Review, int64, error)

	// GetApprovedRatings returns the ratings of all approved reviews for a
	// product. Feeds the full aggregate recomputation.
	GetApprovedRatings(ctx context.Context, productID uint) ([]int, error)
}
