// Package queries contains read-only operations over the order store.
// Queries bypass the aggregate and read projections straight from the
// database, following the CQRS split: commands go through the domain model,
// queries do not.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full view of a single order: header, line
// items with their verification marks, and the transition history.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	Status         string
	CustomerID     kernel.UUID
	CustomerName   string
	PaymentMethod  string
	TrackingNumber string

	Subtotal     int64
	Tax          int64
	Discount     int64
	ShippingCost int64
	Total        int64

	Items       []GetOrderQueryItem
	Transitions []GetOrderQueryTransition

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetOrderQueryItem is one line item row with its verification mark.
type GetOrderQueryItem struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Name      string
	SKU       string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
	Verified  bool
}

// GetOrderQueryTransition is one recorded lifecycle edge.
type GetOrderQueryTransition struct {
	From      string
	To        string
	ActorID   kernel.UUID
	ActorName string
	At        time.Time
}
