package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// deliveryConfirmationSchedule runs the sweep every five minutes.
const deliveryConfirmationSchedule = "0 */5 * * * *"

// DeliveryConfirmationJob closes out shipped orders the customer never
// confirmed. Orders dispatched longer ago than the confirmation window are
// confirmed on the customer's behalf, so the lifecycle and the audit trail
// still end in Delivered.
type DeliveryConfirmationJob struct {
	handler commands.ConfirmDeliveryCommandHandler
	orders  ports.OrderRepository
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryConfirmationJob creates the job. The window is how long a
// shipped order may wait for an explicit confirmation before the sweep
// closes it.
func NewDeliveryConfirmationJob(
	handler commands.ConfirmDeliveryCommandHandler,
	orders ports.OrderRepository,
	window time.Duration,
	logger *slog.Logger,
) *DeliveryConfirmationJob {
	return &DeliveryConfirmationJob{
		handler: handler,
		orders:  orders,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_confirmation_job"),
	}
}

// Start schedules the sweep.
func (j *DeliveryConfirmationJob) Start() error {
	_, err := j.cron.AddFunc(deliveryConfirmationSchedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery confirmation job started",
		"schedule", deliveryConfirmationSchedule, "window", j.window.String())
	return nil
}

// Stop stops the sweep.
func (j *DeliveryConfirmationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery confirmation job stopped")
}

func (j *DeliveryConfirmationJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.window)

	overdue, err := j.orders.GetShippedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load overdue shipments", "error", err)
		return
	}

	for _, o := range overdue {
		// The confirmation is recorded under the customer who placed the
		// order, the same way an explicit confirmation would be.
		customer := o.Customer()
		by, actorErr := actor.NewActor(customer.ID(), customer.Name(), actor.RoleCustomer)
		if actorErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build confirming actor",
				"order_id", o.ID().String(), "error", actorErr)
			continue
		}

		cmd, cmdErr := commands.NewConfirmDeliveryCommand(o.ID(), by)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build confirmation command",
				"order_id", o.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A concurrent explicit confirmation loses the race here; that
			// is the outcome we wanted anyway.
			if errors.Is(handleErr, errs.ErrConflict) || errors.Is(handleErr, errs.ErrInvalidTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to auto-confirm delivery",
				"order_id", o.ID().String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Delivery confirmed after confirmation window",
			"order_id", o.ID().String(), "order_number", o.OrderNumber())
	}
}
