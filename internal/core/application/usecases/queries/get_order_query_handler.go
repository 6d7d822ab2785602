package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the full order view from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", view.OrderNumber, view.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. Returns ObjectNotFoundError when no order with
// the given id exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Items, err = h.readItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Transitions, err = h.readTransitions(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readHeader(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			customer_id,
			customer_name,
			payment_method,
			tracking_number,
			subtotal,
			tax,
			discount,
			shipping_cost,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID

	err := row.Scan(
		&id,
		&response.OrderNumber,
		&response.Status,
		&customerID,
		&response.CustomerName,
		&response.PaymentMethod,
		&response.TrackingNumber,
		&response.Subtotal,
		&response.Tax,
		&response.Discount,
		&response.ShippingCost,
		&response.Total,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			sku,
			quantity,
			unit_price,
			subtotal,
			verified
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItem, 0)
	for rows.Next() {
		var item GetOrderQueryItem
		var id, productID uuid.UUID

		if err = rows.Scan(
			&id,
			&productID,
			&item.Name,
			&item.SKU,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.Verified,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readTransitions(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryTransition, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			actor_name,
			occurred_at
		FROM status_changes
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transitions := make([]GetOrderQueryTransition, 0)
	for rows.Next() {
		var transition GetOrderQueryTransition
		var actorID uuid.UUID

		if err = rows.Scan(
			&transition.From,
			&transition.To,
			&actorID,
			&transition.ActorName,
			&transition.At,
		); err != nil {
			return nil, err
		}

		if transition.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		transitions = append(transitions, transition)
	}

	return transitions, rows.Err()
}
