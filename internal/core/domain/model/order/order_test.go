package order_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role.String()+" Person", role)
	require.NoError(t, err)
	return a
}

func makeCustomerInfo(t *testing.T) order.CustomerInfo {
	t.Helper()
	info, err := order.NewCustomerInfo(
		kernel.NewUUID(), "Elena Vargas", "elena@acme.test", "+56 9 1234 5678", "ACME Ltda", "76.123.456-7")
	require.NoError(t, err)
	return info
}

func makeAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	addr, err := order.NewShippingAddress(
		"Elena Vargas", "Av. Providencia 1234", "Of. 501", "Santiago", "RM",
		"7500000", "CL", "+56 9 1234 5678", "leave at reception")
	require.NoError(t, err)
	return addr
}

func makeDraft(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{makeItem(t, 3, 450_000), makeItem(t, 10, 120_000)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260901-0001", makeCustomerInfo(t), items,
		order.PaymentBankTransfer, makeAddress(t), 1000, kernel.Money{}, kernel.Money{})
	require.NoError(t, err)
	return o
}

// advance drives a draft order to the requested status through the regular
// transition methods.
func advance(t *testing.T, o *order.Order, to order.Status) {
	t.Helper()
	customer := makeActor(t, actor.RoleCustomer)
	vendor := makeActor(t, actor.RoleVendor)
	admin := makeActor(t, actor.RoleAdmin)
	warehouse := makeActor(t, actor.RoleWarehouse)

	steps := []struct {
		at    order.Status
		apply func() error
	}{
		{order.Draft, func() error { return o.Submit(customer) }},
		{order.PendingVendorReview, func() error { return o.VendorApprove(vendor, "") }},
		{order.PendingAdminReview, func() error { return o.AdminApprove(admin, "") }},
		{order.Confirmed, func() error { return o.StartPreparation(warehouse) }},
		{order.Preparing, func() error {
			for _, item := range o.Items() {
				if err := o.VerifyItem(warehouse, item.ID()); err != nil {
					return err
				}
			}
			return o.CompletePreparation(warehouse)
		}},
		{order.ReadyToShip, func() error { return o.Dispatch(warehouse, "TRACK-1") }},
		{order.Shipped, func() error { return o.ConfirmDelivery(customer) }},
	}

	for _, step := range steps {
		if o.Status() == to {
			return
		}
		require.Equal(t, step.at, o.Status())
		require.NoError(t, step.apply())
	}
	require.Equal(t, to, o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("creates draft with computed totals", func(t *testing.T) {
		o := makeDraft(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, order.Draft, o.PersistedStatus())
		assert.Equal(t, int64(2_550_000), o.Totals().Subtotal.Amount())
		assert.Equal(t, int64(255_000), o.Totals().Tax.Amount())
		assert.Equal(t, int64(2_805_000), o.Totals().Total.Amount())
		assert.Empty(t, o.StatusChanges())
		assert.Nil(t, o.SubmittedAt())
	})

	t.Run("requires an order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", makeCustomerInfo(t), []order.LineItem{makeItem(t, 1, 100)},
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{})

		require.ErrorIs(t, err, order.ErrOrderNumberIsRequired)
	})

	t.Run("requires constructed customer info", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", order.CustomerInfo{}, []order.LineItem{makeItem(t, 1, 100)},
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{})

		require.ErrorIs(t, err, order.ErrCustomerInfoIsNotConstructed)
	})

	t.Run("rejects duplicate line item ids", func(t *testing.T) {
		item := makeItem(t, 1, 100)

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", makeCustomerInfo(t), []order.LineItem{item, item},
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SubmitAndReview(t *testing.T) {
	t.Run("submit moves draft to vendor review", func(t *testing.T) {
		o := makeDraft(t)

		require.NoError(t, o.Submit(makeActor(t, actor.RoleCustomer)))

		assert.Equal(t, order.PendingVendorReview, o.Status())
		assert.NotNil(t, o.SubmittedAt())
		require.Len(t, o.StatusChanges(), 1)
		assert.Equal(t, order.Draft, o.StatusChanges()[0].From)
		assert.Equal(t, order.PendingVendorReview, o.StatusChanges()[0].To)
	})

	t.Run("submit requires at least one line item", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", makeCustomerInfo(t), nil,
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{})
		require.NoError(t, err)

		require.ErrorIs(t, o.Submit(makeActor(t, actor.RoleCustomer)), errs.ErrValueIsRequired)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("vendor approval chains into admin review", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.PendingVendorReview)
		vendor := makeActor(t, actor.RoleVendor)

		require.NoError(t, o.VendorApprove(vendor, "stock confirmed"))

		assert.Equal(t, order.PendingAdminReview, o.Status())
		assert.NotNil(t, o.VendorApprovedAt())
		require.NotNil(t, o.VendorApprovedBy())
		assert.True(t, o.VendorApprovedBy().IsEqual(vendor.ID()))
		assert.Equal(t, "stock confirmed", o.VendorNotes())

		changes := o.StatusChanges()
		require.Len(t, changes, 3) // submit + two approval hops
		assert.Equal(t, order.VendorApproved, changes[1].To)
		assert.Equal(t, order.PendingAdminReview, changes[2].To)
		assert.Equal(t, changes[1].At, changes[2].At)
	})

	t.Run("admin approval chains into confirmed", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.PendingAdminReview)
		admin := makeActor(t, actor.RoleAdmin)

		require.NoError(t, o.AdminApprove(admin, ""))

		assert.Equal(t, order.Confirmed, o.Status())
		assert.NotNil(t, o.AdminApprovedAt())
		require.NotNil(t, o.AdminApprovedBy())
		assert.True(t, o.AdminApprovedBy().IsEqual(admin.ID()))
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.PendingVendorReview)

		err := o.VendorReject(makeActor(t, actor.RoleVendor), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.PendingVendorReview, o.Status())
	})

	t.Run("rejection records reason and identity", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.PendingVendorReview)
		vendor := makeActor(t, actor.RoleVendor)

		require.NoError(t, o.VendorReject(vendor, "item discontinued"))

		assert.Equal(t, order.Rejected, o.Status())
		assert.Equal(t, "item discontinued", o.RejectionReason())
		require.NotNil(t, o.RejectedBy())
		assert.True(t, o.RejectedBy().IsEqual(vendor.ID()))
	})

	t.Run("approve from wrong state is InvalidTransition", func(t *testing.T) {
		o := makeDraft(t)

		err := o.VendorApprove(makeActor(t, actor.RoleVendor), "")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellable up to and including Confirmed", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.PendingVendorReview, order.PendingAdminReview, order.Confirmed} {
			o := makeDraft(t)
			advance(t, o, status)

			require.NoError(t, o.Cancel(makeActor(t, actor.RoleCustomer), "changed my mind"))
			assert.Equal(t, order.Cancelled, o.Status())
			assert.NotNil(t, o.CancelledAt())
			assert.Equal(t, "changed my mind", o.CancellationReason())
		}
	})

	t.Run("cancel after preparation began is InvalidTransition", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.Preparing)

		err := o.Cancel(makeActor(t, actor.RoleCustomer), "too late")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		o := makeDraft(t)

		require.ErrorIs(t, o.Cancel(makeActor(t, actor.RoleCustomer), ""), errs.ErrValueIsRequired)
	})
}

func TestOrder_PreparationChecklist(t *testing.T) {
	t.Run("complete preparation requires every item verified", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 1, 100), makeItem(t, 2, 200), makeItem(t, 3, 300)}
		o := makeDraft(t, items...)
		advance(t, o, order.Preparing)
		warehouse := makeActor(t, actor.RoleWarehouse)

		require.NoError(t, o.VerifyItem(warehouse, items[0].ID()))
		require.NoError(t, o.VerifyItem(warehouse, items[2].ID()))

		err := o.CompletePreparation(warehouse)

		require.ErrorIs(t, err, errs.ErrIncompleteChecklist)
		var checklistErr *errs.IncompleteChecklistError
		require.ErrorAs(t, err, &checklistErr)
		assert.Equal(t, []string{items[1].ID().String()}, checklistErr.MissingItemIDs)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("complete preparation succeeds once all items verified", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 1, 100), makeItem(t, 2, 200)}
		o := makeDraft(t, items...)
		advance(t, o, order.Preparing)
		warehouse := makeActor(t, actor.RoleWarehouse)

		for _, item := range items {
			require.NoError(t, o.VerifyItem(warehouse, item.ID()))
		}

		require.NoError(t, o.CompletePreparation(warehouse))
		assert.Equal(t, order.ReadyToShip, o.Status())
		assert.Len(t, o.VerifiedItemIDs(), 2)
	})

	t.Run("verifying an unknown item is NotFound", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.Preparing)

		err := o.VerifyItem(makeActor(t, actor.RoleWarehouse), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("re-verifying an item is a no-op", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 1, 100)}
		o := makeDraft(t, items...)
		advance(t, o, order.Preparing)
		warehouse := makeActor(t, actor.RoleWarehouse)

		require.NoError(t, o.VerifyItem(warehouse, items[0].ID()))
		require.NoError(t, o.VerifyItem(warehouse, items[0].ID()))
		assert.Len(t, o.VerifiedItemIDs(), 1)
	})

	t.Run("verifying outside Preparing is InvalidTransition", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 1, 100)}
		o := makeDraft(t, items...)

		err := o.VerifyItem(makeActor(t, actor.RoleWarehouse), items[0].ID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_DispatchAndDelivery(t *testing.T) {
	t.Run("dispatch requires a tracking number", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.ReadyToShip)

		err := o.Dispatch(makeActor(t, actor.RoleWarehouse), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.ReadyToShip, o.Status())
		assert.Nil(t, o.ShippedAt())
	})

	t.Run("dispatch stamps shippedAt and tracking number", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.ReadyToShip)

		require.NoError(t, o.Dispatch(makeActor(t, actor.RoleWarehouse), "TRACK-99"))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "TRACK-99", o.TrackingNumber())
		assert.NotNil(t, o.ShippedAt())
	})

	t.Run("confirm delivery completes the lifecycle", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.Shipped)

		require.NoError(t, o.ConfirmDelivery(makeActor(t, actor.RoleCustomer)))

		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.ConfirmedAt())
		assert.True(t, o.Status().IsTerminal())
	})
}

func TestOrder_DraftMutations(t *testing.T) {
	t.Run("adding an item recomputes totals", func(t *testing.T) {
		o := makeDraft(t, makeItem(t, 1, 100_000))

		require.NoError(t, o.AddItem(makeItem(t, 2, 50_000)))

		assert.Equal(t, int64(200_000), o.Totals().Subtotal.Amount())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("removing an item recomputes totals", func(t *testing.T) {
		first := makeItem(t, 1, 100_000)
		second := makeItem(t, 2, 50_000)
		o := makeDraft(t, first, second)

		require.NoError(t, o.RemoveItem(second.ID()))

		assert.Equal(t, int64(100_000), o.Totals().Subtotal.Amount())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("changing quantity recomputes totals", func(t *testing.T) {
		item := makeItem(t, 1, 100_000)
		o := makeDraft(t, item)

		require.NoError(t, o.ChangeItemQuantity(item.ID(), 4))

		assert.Equal(t, int64(400_000), o.Totals().Subtotal.Amount())
	})

	t.Run("item mutation is impossible once submitted", func(t *testing.T) {
		item := makeItem(t, 1, 100_000)
		o := makeDraft(t, item)
		advance(t, o, order.PendingVendorReview)

		require.ErrorIs(t, o.AddItem(makeItem(t, 1, 1)), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.RemoveItem(item.ID()), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.ChangeItemQuantity(item.ID(), 2), errs.ErrInvalidTransition)
	})

	t.Run("terms may only change during admin review", func(t *testing.T) {
		o := makeDraft(t, makeItem(t, 1, 100_000))

		require.ErrorIs(t,
			o.UpdateTerms(kernel.Money{}, mustMoney(t, 5_000)), errs.ErrInvalidTransition)

		advance(t, o, order.PendingAdminReview)

		require.NoError(t, o.UpdateTerms(mustMoney(t, 10_000), mustMoney(t, 5_000)))
		assert.Equal(t, int64(10_000), o.Totals().Discount.Amount())
		assert.Equal(t, int64(5_000), o.Totals().ShippingCost.Amount())
		// total = subtotal + tax - discount + shippingCost
		assert.Equal(t, int64(105_000), o.Totals().Total.Amount())
	})
}

func TestOrder_AlreadyApplied(t *testing.T) {
	t.Run("vendor approve is idempotent once applied", func(t *testing.T) {
		o := makeDraft(t)
		advance(t, o, order.PendingAdminReview)

		assert.True(t, o.AlreadyApplied(order.CommandVendorApprove))
		assert.False(t, o.AlreadyApplied(order.CommandAdminApprove))
	})

	t.Run("predicates follow the audit stamps", func(t *testing.T) {
		o := makeDraft(t)
		assert.False(t, o.AlreadyApplied(order.CommandSubmit))

		advance(t, o, order.Delivered)

		for _, cmd := range []order.Command{
			order.CommandSubmit,
			order.CommandVendorApprove,
			order.CommandAdminApprove,
			order.CommandStartPreparation,
			order.CommandCompletePreparation,
			order.CommandDispatch,
			order.CommandConfirmDelivery,
		} {
			assert.True(t, o.AlreadyApplied(cmd), cmd.String())
		}
		assert.False(t, o.AlreadyApplied(order.CommandCancel))
	})

	t.Run("cancel applied only when cancelled", func(t *testing.T) {
		o := makeDraft(t)
		require.NoError(t, o.Cancel(makeActor(t, actor.RoleCustomer), "no longer needed"))

		assert.True(t, o.AlreadyApplied(order.CommandCancel))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restore recomputes totals and sets CAS baseline", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 3, 450_000), makeItem(t, 10, 120_000)}
		now := time.Now().UTC()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-20260901-0002", makeCustomerInfo(t), items,
			order.PaymentCredit30, makeAddress(t), 1000, kernel.Money{}, kernel.Money{},
			order.Preparing,
			order.RestoreState{
				VerifiedItemIDs:      []kernel.UUID{items[0].ID()},
				SubmittedAt:          &now,
				PreparationStartedAt: &now,
				CreatedAt:            now,
				UpdatedAt:            now,
			})

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.Preparing, o.PersistedStatus())
		assert.Equal(t, int64(2_550_000), o.Totals().Subtotal.Amount())
		assert.Len(t, o.VerifiedItemIDs(), 1)
		assert.Empty(t, o.StatusChanges())
	})

	t.Run("restore rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1", makeCustomerInfo(t), []order.LineItem{makeItem(t, 1, 100)},
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{},
			order.Unknown, order.RestoreState{CreatedAt: time.Now(), UpdatedAt: time.Now()})

		require.Error(t, err)
	})

	t.Run("transitions on a restored order keep the loaded CAS baseline", func(t *testing.T) {
		items := []order.LineItem{makeItem(t, 1, 100)}
		now := time.Now().UTC()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1", makeCustomerInfo(t), items,
			order.PaymentCash, makeAddress(t), 1000, kernel.Money{}, kernel.Money{},
			order.PendingVendorReview,
			order.RestoreState{SubmittedAt: &now, CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)

		require.NoError(t, o.VendorApprove(makeActor(t, actor.RoleVendor), ""))

		assert.Equal(t, order.PendingAdminReview, o.Status())
		assert.Equal(t, order.PendingVendorReview, o.PersistedStatus())
		require.Len(t, o.StatusChanges(), 2)
	})
}
