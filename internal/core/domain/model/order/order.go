package order

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberIsRequired is returned when an order is created without a
	// human-readable order number.
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// StatusChange records one accepted transition for notification and audit.
// Auto-chained follow-on transitions produce their own StatusChange entries.
type StatusChange struct {
	From      Status
	To        Status
	ActorID   kernel.UUID
	ActorName string
	At        time.Time
}

// Order represents a commercial quote being converted into a fulfilled order.
// It is the aggregate root owning the canonical status, the line items with
// their derived financial totals, and the preparation checklist.
//
// Order follows these invariants:
//   - subtotal, tax and total are recomputed from line items and terms on
//     every mutation, never accepted from a caller
//   - status only moves along the edges of the lifecycle state machine;
//     every change goes through a transition method
//   - terminal orders (Delivered, Rejected, Cancelled) accept no further
//     line-item or address mutation
//   - every rejection or cancellation records a non-empty reason and the
//     acting identity; every approval records the approving identity
//
// The aggregate remembers the status it was loaded with (PersistedStatus) so
// the repository can perform the compare-and-swap write that resolves
// concurrent commands, and it accumulates StatusChange records so the engine
// can notify collaborators after the write commits.
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customer      CustomerInfo
	items         []LineItem
	taxRateBps    int
	totals        Totals
	status        Status
	paymentMethod PaymentMethod
	address       ShippingAddress

	trackingNumber string
	verifiedItems  map[kernel.UUID]struct{}

	vendorNotes string
	adminNotes  string

	submittedAt          *time.Time
	vendorApprovedAt     *time.Time
	vendorApprovedBy     *kernel.UUID
	adminApprovedAt      *time.Time
	adminApprovedBy      *kernel.UUID
	rejectedAt           *time.Time
	rejectedBy           *kernel.UUID
	rejectionReason      string
	cancelledAt          *time.Time
	cancelledBy          *kernel.UUID
	cancellationReason   string
	preparationStartedAt *time.Time
	shippedAt            *time.Time
	confirmedAt          *time.Time

	createdAt time.Time
	updatedAt time.Time

	persistedStatus Status
	statusChanges   []StatusChange

	isConstructed bool
}

// NewOrder creates a new draft Order with validation. This is the only way to
// create an order from scratch; totals are computed by the aggregator from
// the supplied line items and terms.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer CustomerInfo,
	items []LineItem,
	paymentMethod PaymentMethod,
	address ShippingAddress,
	taxRateBps int,
	discount kernel.Money,
	shippingCost kernel.Money,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	totals, err := CalculateTotals(items, taxRateBps, discount, shippingCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		customer:        customer,
		items:           append([]LineItem(nil), items...),
		taxRateBps:      taxRateBps,
		totals:          totals,
		status:          Draft,
		paymentMethod:   paymentMethod,
		address:         address,
		verifiedItems:   make(map[kernel.UUID]struct{}),
		createdAt:       now,
		updatedAt:       now,
		persistedStatus: Draft,
		isConstructed:   true,
	}, nil
}

// RestoreState carries every persisted attribute needed to reconstruct an
// order from storage. Totals are recomputed from items and terms during
// restore; stored totals are never trusted.
type RestoreState struct {
	TrackingNumber  string
	VerifiedItemIDs []kernel.UUID

	VendorNotes string
	AdminNotes  string

	SubmittedAt          *time.Time
	VendorApprovedAt     *time.Time
	VendorApprovedBy     *kernel.UUID
	AdminApprovedAt      *time.Time
	AdminApprovedBy      *kernel.UUID
	RejectedAt           *time.Time
	RejectedBy           *kernel.UUID
	RejectionReason      string
	CancelledAt          *time.Time
	CancelledBy          *kernel.UUID
	CancellationReason   string
	PreparationStartedAt *time.Time
	ShippedAt            *time.Time
	ConfirmedAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence. The restored
// status becomes the compare-and-swap baseline for the next guarded write.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer CustomerInfo,
	items []LineItem,
	paymentMethod PaymentMethod,
	address ShippingAddress,
	taxRateBps int,
	discount kernel.Money,
	shippingCost kernel.Money,
	status Status,
	state RestoreState,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	totals, err := CalculateTotals(items, taxRateBps, discount, shippingCost)
	if err != nil {
		return nil, err
	}

	verified := make(map[kernel.UUID]struct{}, len(state.VerifiedItemIDs))
	for _, itemID := range state.VerifiedItemIDs {
		verified[itemID] = struct{}{}
	}

	return &Order{
		id:                   id,
		orderNumber:          orderNumber,
		customer:             customer,
		items:                append([]LineItem(nil), items...),
		taxRateBps:           taxRateBps,
		totals:               totals,
		status:               status,
		paymentMethod:        paymentMethod,
		address:              address,
		trackingNumber:       state.TrackingNumber,
		verifiedItems:        verified,
		vendorNotes:          state.VendorNotes,
		adminNotes:           state.AdminNotes,
		submittedAt:          state.SubmittedAt,
		vendorApprovedAt:     state.VendorApprovedAt,
		vendorApprovedBy:     state.VendorApprovedBy,
		adminApprovedAt:      state.AdminApprovedAt,
		adminApprovedBy:      state.AdminApprovedBy,
		rejectedAt:           state.RejectedAt,
		rejectedBy:           state.RejectedBy,
		rejectionReason:      state.RejectionReason,
		cancelledAt:          state.CancelledAt,
		cancelledBy:          state.CancelledBy,
		cancellationReason:   state.CancellationReason,
		preparationStartedAt: state.PreparationStartedAt,
		shippedAt:            state.ShippedAt,
		confirmedAt:          state.ConfirmedAt,
		createdAt:            state.CreatedAt,
		updatedAt:            state.UpdatedAt,
		persistedStatus:      status,
		isConstructed:        true,
	}, nil
}

func validateItems(items []LineItem) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidError("duplicate line item id " + item.ID().String())
		}
		seen[item.ID()] = struct{}{}
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Customer returns the creating customer's details.
func (o *Order) Customer() CustomerInfo { return o.customer }

// Items returns a copy of the order's line items in order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// TaxRateBps returns the tax rate in basis points configured for this order's
// origin workflow.
func (o *Order) TaxRateBps() int { return o.taxRateBps }

// Totals returns the derived financial amounts.
func (o *Order) Totals() Totals { return o.totals }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// PersistedStatus returns the status the aggregate was loaded with. The
// repository conditions its write on this value still holding in storage.
func (o *Order) PersistedStatus() Status { return o.persistedStatus }

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() ShippingAddress { return o.address }

// TrackingNumber returns the carrier tracking number, empty until dispatch.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// VendorNotes returns the vendor's approval notes, possibly empty.
func (o *Order) VendorNotes() string { return o.vendorNotes }

// AdminNotes returns the administrator's approval notes, possibly empty.
func (o *Order) AdminNotes() string { return o.adminNotes }

// SubmittedAt returns when the order entered vendor review, nil before.
func (o *Order) SubmittedAt() *time.Time { return o.submittedAt }

// VendorApprovedAt returns when the vendor approved, nil before.
func (o *Order) VendorApprovedAt() *time.Time { return o.vendorApprovedAt }

// VendorApprovedBy returns the approving vendor's id, nil before approval.
func (o *Order) VendorApprovedBy() *kernel.UUID { return o.vendorApprovedBy }

// AdminApprovedAt returns when the administrator approved, nil before.
func (o *Order) AdminApprovedAt() *time.Time { return o.adminApprovedAt }

// AdminApprovedBy returns the approving administrator's id, nil before approval.
func (o *Order) AdminApprovedBy() *kernel.UUID { return o.adminApprovedBy }

// RejectedAt returns when the order was rejected, nil if it never was.
func (o *Order) RejectedAt() *time.Time { return o.rejectedAt }

// RejectedBy returns the rejecting reviewer's id, nil if never rejected.
func (o *Order) RejectedBy() *kernel.UUID { return o.rejectedBy }

// RejectionReason returns the recorded rejection reason, empty if never rejected.
func (o *Order) RejectionReason() string { return o.rejectionReason }

// CancelledAt returns when the order was cancelled, nil if it never was.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// CancelledBy returns the cancelling actor's id, nil if never cancelled.
func (o *Order) CancelledBy() *kernel.UUID { return o.cancelledBy }

// CancellationReason returns the recorded cancellation reason, empty if never cancelled.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// PreparationStartedAt returns when warehouse picking began, nil before.
func (o *Order) PreparationStartedAt() *time.Time { return o.preparationStartedAt }

// ShippedAt returns when the order was dispatched, nil before.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// ConfirmedAt returns when delivery was confirmed, nil before.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last accepted mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// VerifiedItemIDs returns the checklist's verified line-item ids, in the
// order the items appear on the order.
func (o *Order) VerifiedItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.verifiedItems))
	for _, item := range o.items {
		if _, ok := o.verifiedItems[item.ID()]; ok {
			ids = append(ids, item.ID())
		}
	}
	return ids
}

// StatusChanges returns the transitions accepted since the aggregate was
// constructed or restored. The engine publishes one notification per entry
// after the guarded write commits.
func (o *Order) StatusChanges() []StatusChange {
	return append([]StatusChange(nil), o.statusChanges...)
}

// AlreadyApplied reports whether the command's target state has already been
// reached, making a re-invocation an idempotent no-op that returns the
// current record instead of erroring.
func (o *Order) AlreadyApplied(cmd Command) bool {
	switch cmd {
	case CommandSubmit:
		return o.submittedAt != nil
	case CommandVendorApprove:
		return o.vendorApprovedAt != nil
	case CommandAdminApprove:
		return o.adminApprovedAt != nil
	case CommandVendorReject, CommandAdminReject:
		return o.status == Rejected
	case CommandStartPreparation:
		return o.preparationStartedAt != nil
	case CommandCompletePreparation:
		return o.status == ReadyToShip || o.shippedAt != nil
	case CommandDispatch:
		return o.shippedAt != nil
	case CommandConfirmDelivery:
		return o.confirmedAt != nil
	case CommandCancel:
		return o.status == Cancelled
	default:
		return false
	}
}

// applyStatus performs one accepted edge: records the change for
// notification, moves the status and touches updatedAt.
func (o *Order) applyStatus(to Status, by actor.Actor, at time.Time) {
	o.statusChanges = append(o.statusChanges, StatusChange{
		From:      o.status,
		To:        to,
		ActorID:   by.ID(),
		ActorName: by.Name(),
		At:        at,
	})
	o.status = to
	o.updatedAt = at
}

func (o *Order) requireStatus(cmd Command, allowed ...Status) error {
	for _, s := range allowed {
		if o.status == s {
			return nil
		}
	}
	return errs.NewInvalidTransitionError(cmd.String(), o.status.String())
}

// Submit moves a draft order into the vendor review queue.
// The draft must contain at least one line item.
func (o *Order) Submit(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandSubmit, Draft); err != nil {
		return err
	}
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	now := time.Now().UTC()
	o.submittedAt = &now
	o.applyStatus(PendingVendorReview, by, now)
	return nil
}

// VendorApprove records the vendor's approval and immediately chains the
// order into the admin review queue. Both edges are recorded as distinct
// status changes carrying the same actor and timestamp.
func (o *Order) VendorApprove(by actor.Actor, notes string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandVendorApprove, PendingVendorReview); err != nil {
		return err
	}

	now := time.Now().UTC()
	byID := by.ID()
	o.vendorApprovedAt = &now
	o.vendorApprovedBy = &byID
	o.vendorNotes = notes
	o.applyStatus(VendorApproved, by, now)
	o.applyStatus(PendingAdminReview, by, now)
	return nil
}

// VendorReject terminally rejects an order in vendor review.
// The reason must be non-empty and is recorded with the acting identity.
func (o *Order) VendorReject(by actor.Actor, reason string) error {
	return o.reject(CommandVendorReject, PendingVendorReview, by, reason)
}

// AdminApprove records the administrator's approval and immediately chains
// the order into Confirmed.
func (o *Order) AdminApprove(by actor.Actor, notes string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandAdminApprove, PendingAdminReview); err != nil {
		return err
	}

	now := time.Now().UTC()
	byID := by.ID()
	o.adminApprovedAt = &now
	o.adminApprovedBy = &byID
	o.adminNotes = notes
	o.applyStatus(AdminApproved, by, now)
	o.applyStatus(Confirmed, by, now)
	return nil
}

// AdminReject terminally rejects an order in admin review.
// The reason must be non-empty and is recorded with the acting identity.
func (o *Order) AdminReject(by actor.Actor, reason string) error {
	return o.reject(CommandAdminReject, PendingAdminReview, by, reason)
}

func (o *Order) reject(cmd Command, from Status, by actor.Actor, reason string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(cmd, from); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	now := time.Now().UTC()
	byID := by.ID()
	o.rejectedAt = &now
	o.rejectedBy = &byID
	o.rejectionReason = reason
	o.applyStatus(Rejected, by, now)
	return nil
}

// Cancel terminally cancels the order. Cancellation is only reachable up to
// and including Confirmed; once preparation has begun the attempt fails with
// an invalid transition. The reason must be non-empty.
func (o *Order) Cancel(by actor.Actor, reason string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if !o.status.IsCancellable() {
		return errs.NewInvalidTransitionError(CommandCancel.String(), o.status.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	now := time.Now().UTC()
	byID := by.ID()
	o.cancelledAt = &now
	o.cancelledBy = &byID
	o.cancellationReason = reason
	o.applyStatus(Cancelled, by, now)
	return nil
}

// StartPreparation begins warehouse picking on a confirmed order and opens
// an empty preparation checklist.
func (o *Order) StartPreparation(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandStartPreparation, Confirmed); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.preparationStartedAt = &now
	o.verifiedItems = make(map[kernel.UUID]struct{}, len(o.items))
	o.applyStatus(Preparing, by, now)
	return nil
}

// VerifyItem marks one line item as verified on the preparation checklist.
// Re-verifying an already verified item is a no-op. The order must be in
// Preparing and the item must exist.
func (o *Order) VerifyItem(by actor.Actor, itemID kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandVerifyItem, Preparing); err != nil {
		return err
	}
	if !o.hasItem(itemID) {
		return errs.NewObjectNotFoundError("line item", itemID.String())
	}

	o.verifiedItems[itemID] = struct{}{}
	o.updatedAt = time.Now().UTC()
	return nil
}

// CompletePreparation closes the checklist and marks the order ready to
// ship. Guarded: every line item must have been verified; otherwise the
// attempt fails naming the missing items and the status stays Preparing.
func (o *Order) CompletePreparation(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandCompletePreparation, Preparing); err != nil {
		return err
	}

	var missing []string
	for _, item := range o.items {
		if _, ok := o.verifiedItems[item.ID()]; !ok {
			missing = append(missing, item.ID().String())
		}
	}
	if len(missing) > 0 {
		return errs.NewIncompleteChecklistError(o.id.String(), missing)
	}

	o.applyStatus(ReadyToShip, by, time.Now().UTC())
	return nil
}

// Dispatch ships a prepared order. Guarded: the tracking number supplied in
// the same command must be non-empty. Stamps shippedAt.
func (o *Order) Dispatch(by actor.Actor, trackingNumber string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandDispatch, ReadyToShip); err != nil {
		return err
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	now := time.Now().UTC()
	o.trackingNumber = trackingNumber
	o.shippedAt = &now
	o.applyStatus(Shipped, by, now)
	return nil
}

// ConfirmDelivery records receipt of a shipped order, completing the lifecycle.
func (o *Order) ConfirmDelivery(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(CommandConfirmDelivery, Shipped); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.confirmedAt = &now
	o.applyStatus(Delivered, by, now)
	return nil
}

// AddItem appends a line item to a draft order and recomputes totals.
func (o *Order) AddItem(item LineItem) error {
	if err := o.requireStatus(CommandModifyItems, Draft); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if o.hasItem(item.ID()) {
		return errs.NewValueIsInvalidError("duplicate line item id " + item.ID().String())
	}

	items := append(append([]LineItem(nil), o.items...), item)
	return o.replaceItems(items)
}

// RemoveItem removes a line item from a draft order and recomputes totals.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.requireStatus(CommandModifyItems, Draft); err != nil {
		return err
	}
	if !o.hasItem(itemID) {
		return errs.NewObjectNotFoundError("line item", itemID.String())
	}

	items := make([]LineItem, 0, len(o.items)-1)
	for _, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			items = append(items, item)
		}
	}
	return o.replaceItems(items)
}

// ChangeItemQuantity updates a line item's quantity on a draft order and
// recomputes totals. The quantity must be positive.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity int) error {
	if err := o.requireStatus(CommandModifyItems, Draft); err != nil {
		return err
	}

	items := make([]LineItem, 0, len(o.items))
	found := false
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			updated, err := item.WithQuantity(quantity)
			if err != nil {
				return err
			}
			items = append(items, updated)
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return errs.NewObjectNotFoundError("line item", itemID.String())
	}
	return o.replaceItems(items)
}

// UpdateTerms adjusts the discount and shipping cost during admin review and
// recomputes totals. Line items are immutable past Draft; terms are the only
// financial input an administrator may change.
func (o *Order) UpdateTerms(discount, shippingCost kernel.Money) error {
	if err := o.requireStatus(CommandModifyTerms, PendingAdminReview); err != nil {
		return err
	}

	totals, err := CalculateTotals(o.items, o.taxRateBps, discount, shippingCost)
	if err != nil {
		return err
	}

	o.totals = totals
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) replaceItems(items []LineItem) error {
	totals, err := CalculateTotals(items, o.taxRateBps, o.totals.Discount, o.totals.ShippingCost)
	if err != nil {
		return err
	}

	o.items = items
	o.totals = totals
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) hasItem(itemID kernel.UUID) bool {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return true
		}
	}
	return false
}
