package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves order summaries, optionally filtered by status
// or by customer. Both filters may be combined; an empty query lists
// everything.
//
// Example:
//
//	query, _ := NewListOrdersQuery(
//	    WithStatusFilter(order.PendingVendorReview))
//	summaries, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// ListOrdersOption configures an optional filter.
type ListOrdersOption func(*ListOrdersQuery) error

// WithStatusFilter restricts the listing to one lifecycle status.
func WithStatusFilter(status order.Status) ListOrdersOption {
	return func(q *ListOrdersQuery) error {
		if err := status.Validate(); err != nil {
			return err
		}
		q.status = &status
		return nil
	}
}

// WithCustomerFilter restricts the listing to one customer's orders.
func WithCustomerFilter(customerID kernel.UUID) ListOrdersOption {
	return func(q *ListOrdersQuery) error {
		if err := customerID.Validate(); err != nil {
			return err
		}
		q.customerID = &customerID
		return nil
	}
}

// NewListOrdersQuery creates a listing query with the given filters.
func NewListOrdersQuery(opts ...ListOrdersOption) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	for _, opt := range opts {
		if err := opt(&query); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, nil when unset.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ListOrdersQueryResponse is one order summary row.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	Status       string
	CustomerName string
	Total        int64
	CreatedAt    time.Time
}
