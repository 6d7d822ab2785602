package commands

import (
	"context"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// transitionRunner drives the shared lifecycle flow every transition handler
// follows: load the aggregate, short-circuit commands that already took
// effect, authorize the caller through the transition gate, apply the
// aggregate operation, and persist under the compare-and-swap guard.
// Notifications for newly recorded transitions are published only after the
// transaction commits.
type transitionRunner struct {
	uowFactory OrderUoWFactory
	gate       services.TransitionGate
	notifier   ports.TransitionNotifier
}

func newTransitionRunner(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) transitionRunner {
	return transitionRunner{
		uowFactory: uowFactory,
		gate:       gate,
		notifier:   notifier,
	}
}

func (r transitionRunner) run(
	ctx context.Context,
	orderID kernel.UUID,
	by actor.Actor,
	cmd order.Command,
	apply func(*order.Order) error,
) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	// A repeated invocation of a command that already took effect is a
	// success that changes nothing, not an authorization failure.
	if aggregate.AlreadyApplied(cmd) {
		return nil
	}

	if err = r.gate.Authorize(by.Role(), cmd, aggregate.Status()); err != nil {
		return err
	}

	if err = apply(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	r.publish(ctx, aggregate)
	return nil
}

// publish emits one notification per transition recorded during this
// command. Chained approvals therefore produce two notifications. Delivery
// failures never surface to the caller.
func (r transitionRunner) publish(ctx context.Context, aggregate *order.Order) {
	if r.notifier == nil {
		return
	}
	for _, change := range aggregate.StatusChanges() {
		r.notifier.Notify(ctx, ports.TransitionNotification{
			OrderID:     aggregate.ID().String(),
			OrderNumber: aggregate.OrderNumber(),
			From:        change.From,
			To:          change.To,
			ActorID:     change.ActorID.String(),
			ActorName:   change.ActorName,
			At:          change.At,
		})
	}
}
