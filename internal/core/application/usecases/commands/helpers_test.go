package commands_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetShippedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTransitionNotifier struct{ mock.Mock }

func (m *MockTransitionNotifier) Notify(ctx context.Context, n ports.TransitionNotification) {
	m.Called(ctx, n)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetProduct(ctx context.Context, productID kernel.UUID) (ports.CatalogProduct, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(ports.CatalogProduct), args.Error(1)
}

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "Test "+role.String(), role)
	require.NoError(t, err)
	return a
}

func testCustomerInfo(t *testing.T) order.CustomerInfo {
	t.Helper()
	info, err := order.NewCustomerInfo(
		kernel.NewUUID(), "Elena Vargas", "elena@acme.test", "+56 9 1234 5678", "", "")
	require.NoError(t, err)
	return info
}

func testAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	addr, err := order.NewShippingAddress(
		"Elena Vargas", "Av. Providencia 1234", "", "Santiago", "RM",
		"7500000", "CL", "+56 9 1234 5678", "")
	require.NoError(t, err)
	return addr
}

func testLineItem(t *testing.T) order.LineItem {
	t.Helper()
	price, err := kernel.NewMoney(450_000)
	require.NoError(t, err)
	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Industrial Valve", "VAL-450", 3, price)
	require.NoError(t, err)
	return item
}

// testOrderInStatus builds a persisted looking order in the given status by
// restoring it with the stamps the status implies.
func testOrderInStatus(t *testing.T, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{testLineItem(t)}
	}

	now := time.Now().UTC()
	state := order.RestoreState{CreatedAt: now, UpdatedAt: now}
	actorID := kernel.NewUUID()

	switch status {
	case order.Shipped:
		state.ShippedAt = &now
		state.TrackingNumber = "TRACK-1"
		fallthrough
	case order.ReadyToShip:
		for _, item := range items {
			state.VerifiedItemIDs = append(state.VerifiedItemIDs, item.ID())
		}
		fallthrough
	case order.Preparing:
		state.PreparationStartedAt = &now
		fallthrough
	case order.Confirmed:
		state.AdminApprovedAt = &now
		state.AdminApprovedBy = &actorID
		fallthrough
	case order.PendingAdminReview:
		state.VendorApprovedAt = &now
		state.VendorApprovedBy = &actorID
		fallthrough
	case order.PendingVendorReview:
		state.SubmittedAt = &now
	case order.Draft:
	default:
		t.Fatalf("unsupported fixture status %s", status)
	}

	if status == order.Preparing {
		state.VerifiedItemIDs = nil
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-20260901-0001", testCustomerInfo(t), items,
		order.PaymentBankTransfer, testAddress(t), 1000,
		kernel.Money{}, kernel.Money{}, status, state)
	require.NoError(t, err)
	return o
}
