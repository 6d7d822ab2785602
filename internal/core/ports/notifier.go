package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// TransitionNotification describes a single recorded lifecycle edge.
// One notification is published per StatusChange, so a chained approval
// produces two notifications.
type TransitionNotification struct {
	OrderID     string
	OrderNumber string
	From        order.Status
	To          order.Status
	ActorID     string
	ActorName   string
	At          time.Time
}

// TransitionNotifier publishes lifecycle transitions to interested parties
// after the owning transaction has committed. Delivery is best effort:
// implementations must never fail the business operation.
type TransitionNotifier interface {
	Notify(ctx context.Context, notification TransitionNotification)
}
