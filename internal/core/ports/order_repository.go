package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and lifecycle stamps.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded on the status the aggregate was loaded with: if the stored row
	// no longer carries that status a ConflictError is returned and nothing
	// is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including line items and the verification
	// checklist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves every order placed by the given customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the review queues and the warehouse picking list.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetShippedBefore retrieves orders dispatched before the cutoff that
	// have not yet been confirmed delivered. Used by the unattended
	// delivery confirmation job.
	GetShippedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
