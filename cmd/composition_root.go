package cmd

import (
	"fmt"
	"log/slog"

	"orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/catalog"
	"orderflow/internal/adapters/out/identity"
	"orderflow/internal/adapters/out/notify"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers
// together. Handlers are created fresh per call; the shared pieces (database,
// redis client, gate) live here.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       services.TransitionGate
	catalog    ports.CatalogReader
	notifier   ports.TransitionNotifier
	identity   ports.IdentityProvider
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	identityProvider, err := identity.NewJWTIdentityProvider([]byte(configs.JWTSecret))
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create identity provider: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewTransitionGate(),
		catalog:    catalog.NewRedisCatalogReader(redisClient),
		notifier:   notify.NewRedisTransitionNotifier(redisClient, configs.NotifyChannel, logger),
		identity:   identityProvider,
		logger:     logger,
	}, nil
}

// orderUoWFactory adapts the concrete unit of work factory to the narrower
// interface the command handlers consume.
func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateVendorApproveOrderCommandHandler() commands.VendorApproveOrderCommandHandler {
	return commands.NewVendorApproveOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateVendorRejectOrderCommandHandler() commands.VendorRejectOrderCommandHandler {
	return commands.NewVendorRejectOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateAdminApproveOrderCommandHandler() commands.AdminApproveOrderCommandHandler {
	return commands.NewAdminApproveOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateAdminRejectOrderCommandHandler() commands.AdminRejectOrderCommandHandler {
	return commands.NewAdminRejectOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateMarkItemVerifiedCommandHandler() commands.MarkItemVerifiedCommandHandler {
	return commands.NewMarkItemVerifiedCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateCompletePreparationCommandHandler() commands.CompletePreparationCommandHandler {
	return commands.NewCompletePreparationCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.gate, c.notifier)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.orderUoWFactory(), c.gate, c.catalog)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateChangeItemQuantityCommandHandler() commands.ChangeItemQuantityCommandHandler {
	return commands.NewChangeItemQuantityCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateUpdateTermsCommandHandler() commands.UpdateTermsCommandHandler {
	return commands.NewUpdateTermsCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.identity, http.ServerHandlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		SubmitOrder:         c.CreateSubmitOrderCommandHandler(),
		VendorApprove:       c.CreateVendorApproveOrderCommandHandler(),
		VendorReject:        c.CreateVendorRejectOrderCommandHandler(),
		AdminApprove:        c.CreateAdminApproveOrderCommandHandler(),
		AdminReject:         c.CreateAdminRejectOrderCommandHandler(),
		StartPreparation:    c.CreateStartPreparationCommandHandler(),
		MarkItemVerified:    c.CreateMarkItemVerifiedCommandHandler(),
		CompletePreparation: c.CreateCompletePreparationCommandHandler(),
		DispatchOrder:       c.CreateDispatchOrderCommandHandler(),
		ConfirmDelivery:     c.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		AddLineItem:         c.CreateAddLineItemCommandHandler(),
		RemoveLineItem:      c.CreateRemoveLineItemCommandHandler(),
		ChangeItemQuantity:  c.CreateChangeItemQuantityCommandHandler(),
		UpdateTerms:         c.CreateUpdateTermsCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
	})
}

// CreateJobManager assembles the background jobs. The repository handed to
// the sweep runs outside any transaction; each confirmation opens its own
// unit of work through the command handler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateConfirmDeliveryCommandHandler(),
		c.uowFactory.Create().OrderRepository(),
		c.configs.DeliveryConfirmationWindow,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
