package order

import "context"

// ListFilter narrows order listings.
type ListFilter struct {
	BuyerID  uint
	SellerID uint
	Status   string
	Page     int
	PageSize int
}

// Repository defines the interface for order persistence operations.
type Repository interface {
	// Create creates a new order
	Create(ctx context.Context, o *Order) error

	// Update updates an existing order
	Update(ctx context.Context, o *Order) error

	// GetByID retrieves an order by internal ID
	GetByID(ctx context.Context, id uint) (*Order, error)

	// GetBySID retrieves an order by public SID
	GetBySID(ctx context.Context, sid string) (*Order, error)

	// GetByGatewaySession retrieves an order by its checkout session ID
	GetByGatewaySession(ctx context.Context, sessionID string) (*Order, error)

	// List retrieves a paginated, filtered order listing
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
}
