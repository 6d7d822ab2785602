package errs_test

import (
	"testing"

	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Dispatch", "Preparing")

		assert.Equal(t, "Dispatch", err.Command)
		assert.Equal(t, "Preparing", err.CurrentStatus)
		assert.Equal(t, "invalid transition: Dispatch is not allowed from status Preparing", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("Customer", "VendorApprove", "PendingVendorReview")

		assert.Equal(t, "Customer", err.Role)
		assert.Equal(t, "VendorApprove", err.Command)
		assert.Equal(t, "PendingVendorReview", err.CurrentStatus)
		assert.Equal(t,
			"forbidden: role Customer may not VendorApprove in status PendingVendorReview",
			err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order-1", "Confirmed", "Cancelled")

		assert.Equal(t, "order-1", err.OrderID)
		assert.Equal(t, "Confirmed", err.ExpectedStatus)
		assert.Equal(t, "Cancelled", err.ActualStatus)
		assert.Equal(t,
			"concurrent update conflict: order order-1 was expected in status Confirmed but is in status Cancelled",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestIncompleteChecklistError(t *testing.T) {
	t.Run("NewIncompleteChecklistError", func(t *testing.T) {
		err := errs.NewIncompleteChecklistError("order-1", []string{"item-a", "item-b"})

		assert.Equal(t, "order-1", err.OrderID)
		assert.Equal(t, []string{"item-a", "item-b"}, err.MissingItemIDs)
		assert.Equal(t,
			"preparation checklist is incomplete: order order-1 has unverified items: item-a, item-b",
			err.Error())
		assert.Equal(t, errs.ErrIncompleteChecklist, err.Unwrap())
	})
}

func TestLifecycleErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with lifecycle errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewInvalidTransitionError("Cancel", "Preparing"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewForbiddenError("Vendor", "AdminApprove", "PendingAdminReview"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewConflictError("id", "Draft", "Cancelled"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewIncompleteChecklistError("id", nil), errs.ErrIncompleteChecklist)
	})
}
