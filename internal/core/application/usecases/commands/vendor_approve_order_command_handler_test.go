package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVendorApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendor := testActor(t, actor.RoleVendor)
	testOrder := testOrderInStatus(t, order.PendingVendorReview)

	cmd, err := commands.NewVendorApproveOrderCommand(testOrder.ID(), vendor, "stock confirmed")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockTransitionNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// The chained approval publishes one notification per recorded hop.
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.TransitionNotification) bool {
		return n.To == order.VendorApproved
	})).Once()
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.TransitionNotification) bool {
		return n.To == order.PendingAdminReview
	})).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PendingAdminReview, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVendorApproveOrderCommandHandler_Handle_RepeatIsNoOp(t *testing.T) {
	ctx := t.Context()
	vendor := testActor(t, actor.RoleVendor)
	testOrder := testOrderInStatus(t, order.PendingAdminReview) // already approved by vendor

	cmd, err := commands.NewVendorApproveOrderCommand(testOrder.ID(), vendor, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockTransitionNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PendingAdminReview, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestVendorApproveOrderCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, actor.RoleCustomer)
	testOrder := testOrderInStatus(t, order.PendingVendorReview)

	cmd, err := commands.NewVendorApproveOrderCommand(testOrder.ID(), customer, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.PendingVendorReview, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVendorApproveOrderCommandHandler_Handle_UpdateConflict(t *testing.T) {
	ctx := t.Context()
	vendor := testActor(t, actor.RoleVendor)
	testOrder := testOrderInStatus(t, order.PendingVendorReview)

	cmd, err := commands.NewVendorApproveOrderCommand(testOrder.ID(), vendor, "")
	require.NoError(t, err)

	conflict := errs.NewConflictError(
		testOrder.ID().String(), order.PendingVendorReview.String(), order.Cancelled.String())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockTransitionNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestVendorApproveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.VendorApproveOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), nil)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrVendorApproveOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestVendorApproveOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	vendor := testActor(t, actor.RoleVendor)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewVendorApproveOrderCommand(orderID, vendor, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVendorApproveOrderCommandHandler(factory, services.NewTransitionGate(), nil)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
