package postgres_test

import (
	"context"
	"fmt"
	"testing"

	postgres_adapter "orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}, &orderrepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, status_changes").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to the repository
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := suite.newDraftOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
	suite.Equal(testOrder.OrderNumber(), retrievedOrder.OrderNumber())
}

// TestUnitOfWork_ReviewChainTransaction verifies that a multi-step lifecycle
// transition persists atomically within a single transaction, including the
// status history rows appended by each step.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReviewChainTransaction() {
	ctx := context.Background()

	// Seed a submitted order outside the transaction
	testOrder := suite.newDraftOrder()
	customer := suite.newActor(actor.RoleCustomer, "Elena Petrova")
	err := testOrder.Submit(customer)
	suite.Require().NoError(err)

	seedUow := suite.factory.Create()
	err = seedUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Run the vendor review inside a transaction
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	reviewed, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	vendor := suite.newActor(actor.RoleVendor, "Anton Weber")
	err = reviewed.VendorApprove(vendor, "stock confirmed")
	suite.Require().NoError(err)
	suite.Equal(order.PendingAdminReview, reviewed.Status())

	err = uow.OrderRepository().Update(ctx, reviewed)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both hops of the chained transition must be visible after commit
	newUow := suite.factory.Create()
	final, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingAdminReview, final.Status())
	suite.Equal(order.PendingAdminReview, final.PersistedStatus())
	suite.Require().NotNil(final.VendorApprovedAt())
	suite.Equal(vendor.ID(), *final.VendorApprovedBy())

	var changeCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().Bytes()).
		Count(&changeCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(3), changeCount, "Submit plus the two-hop vendor approval should record three changes")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test orders
	order1 := suite.newDraftOrder()
	order2 := suite.newDraftOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add orders within transaction
	err = uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Verify orders exist within transaction
	_, err = uow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify orders do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "First order should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Second order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := suite.newDraftOrder()
	order2 := suite.newDraftOrder()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := suite.newDraftOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_FulfillmentWorkflow drives an order through the full lifecycle
// across several transactions and verifies the final persisted state.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FulfillmentWorkflow() {
	ctx := context.Background()

	customer := suite.newActor(actor.RoleCustomer, "Elena Petrova")
	vendor := suite.newActor(actor.RoleVendor, "Anton Weber")
	admin := suite.newActor(actor.RoleAdmin, "Sofia Lindqvist")
	warehouse := suite.newActor(actor.RoleWarehouse, "Marko Jovanovic")

	testOrder := suite.newDraftOrder()

	seedUow := suite.factory.Create()
	err := seedUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	steps := []func(o *order.Order) error{
		func(o *order.Order) error { return o.Submit(customer) },
		func(o *order.Order) error { return o.VendorApprove(vendor, "") },
		func(o *order.Order) error { return o.AdminApprove(admin, "") },
		func(o *order.Order) error { return o.StartPreparation(warehouse) },
		func(o *order.Order) error {
			for _, item := range o.Items() {
				if err := o.VerifyItem(warehouse, item.ID()); err != nil {
					return err
				}
			}
			return nil
		},
		func(o *order.Order) error { return o.CompletePreparation(warehouse) },
		func(o *order.Order) error { return o.Dispatch(warehouse, "TRK-9000451") },
		func(o *order.Order) error { return o.ConfirmDelivery(customer) },
	}

	for _, step := range steps {
		uow := suite.factory.Create()
		err = uow.Begin(ctx)
		suite.Require().NoError(err)

		current, err := uow.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(err)

		err = step(current)
		suite.Require().NoError(err)

		err = uow.OrderRepository().Update(ctx, current)
		suite.Require().NoError(err)

		err = uow.Commit(ctx)
		suite.Require().NoError(err)
	}

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()
	final, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, final.Status())
	suite.Equal("TRK-9000451", final.TrackingNumber())
	suite.Require().NotNil(final.ShippedAt())
	suite.Require().NotNil(final.ConfirmedAt())
	suite.Len(final.VerifiedItemIDs(), len(final.Items()))

	// The full lifecycle records nine transitions including the pass-through hops
	var changeCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().Bytes()).
		Count(&changeCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(9), changeCount)

	// Delivered orders no longer show up in the shipped backlog
	shipped, err := newUow.OrderRepository().GetAllInStatus(ctx, order.Shipped)
	suite.Require().NoError(err)
	suite.Empty(shipped)
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a multi-step workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()

	customer := suite.newActor(actor.RoleCustomer, "Elena Petrova")

	testOrder := suite.newDraftOrder()
	seedUow := suite.factory.Create()
	err := seedUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Submit inside a transaction, then roll it back
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	current, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = current.Submit(customer)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, current)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// The draft must be untouched after rollback
	newUow := suite.factory.Create()
	final, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Draft, final.Status())
	suite.Nil(final.SubmittedAt())

	var changeCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().Bytes()).
		Count(&changeCount).Error
	suite.Require().NoError(err)
	suite.Zero(changeCount, "No status changes should survive the rollback")
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := suite.newDraftOrder()
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add a valid order
	newOrder := suite.newDraftOrder()
	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)

	// Try to add a duplicate of the existing order (should fail)
	duplicate := suite.newDraftOrderWithNumber(existingOrder.OrderNumber())
	err = uow.OrderRepository().Add(ctx, duplicate)
	suite.Require().Error(err, "Adding order with duplicate number should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing order should still exist (was added before transaction)
	_, err = newUow.OrderRepository().Get(ctx, existingOrder.ID())
	suite.Require().NoError(err, "Existing order should still exist")

	// New order should not exist (transaction was rolled back)
	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")
}

// newActor builds a valid actor with the given role.
func (suite *UnitOfWorkIntegrationTestSuite) newActor(role actor.Role, name string) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), name, role)
	suite.Require().NoError(err)
	return a
}

// newDraftOrder creates a valid draft order with a unique order number.
func (suite *UnitOfWorkIntegrationTestSuite) newDraftOrder() *order.Order {
	return suite.newDraftOrderWithNumber(fmt.Sprintf("ORD-20260115-%.8s", kernel.NewUUID().String()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newDraftOrderWithNumber(number string) *order.Order {
	customer, err := order.NewCustomerInfo(
		kernel.NewUUID(),
		"Baltic Machining OU",
		"purchasing@balticmachining.example",
		"+372 5551 2233",
		"Baltic Machining OU",
		"EE102030405",
	)
	suite.Require().NoError(err)

	address, err := order.NewShippingAddress(
		"Receiving Dock 3",
		"Peterburi tee 46",
		"",
		"Tallinn",
		"Harju",
		"11415",
		"EE",
		"+372 5551 2233",
		"Call ahead for gate access",
	)
	suite.Require().NoError(err)

	unitPrice, err := kernel.NewMoney(450_000)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Industrial Valve", "VAL-450", 3, unitPrice)
	suite.Require().NoError(err)

	discount, err := kernel.NewMoney(0)
	suite.Require().NoError(err)
	shippingCost, err := kernel.NewMoney(25_000)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		customer,
		[]order.LineItem{item},
		order.PaymentBankTransfer,
		address,
		2000,
		discount,
		shippingCost,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
