package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries from the database, newest
// first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing with the query's filters applied.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			order_number,
			status,
			customer_name,
			total,
			created_at
		FROM orders
	`
	where := ""
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		where = " WHERE status = ?"
		args = append(args, status.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		if where == "" {
			where = " WHERE customer_id = ?"
		} else {
			where += " AND customer_id = ?"
		}
		args = append(args, customerID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt+where+" ORDER BY created_at DESC", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var summary ListOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.Status,
			&summary.CustomerName,
			&summary.Total,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
