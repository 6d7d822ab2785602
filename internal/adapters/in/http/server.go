// Package http exposes the order lifecycle over a JSON API.
// Every route resolves the acting party from the bearer token first; the
// transition gate inside the application layer decides whether that actor
// may drive the requested transition.
package http

import (
	"errors"
	"net/http"
	"strings"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Error is the JSON error body returned by every failing route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// MissingItemIDs is set only for incomplete checklist rejections.
	MissingItemIDs []string `json:"missing_item_ids,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity ports.IdentityProvider

	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	submitOrderHandler         commands.SubmitOrderCommandHandler
	vendorApproveHandler       commands.VendorApproveOrderCommandHandler
	vendorRejectHandler        commands.VendorRejectOrderCommandHandler
	adminApproveHandler        commands.AdminApproveOrderCommandHandler
	adminRejectHandler         commands.AdminRejectOrderCommandHandler
	startPreparationHandler    commands.StartPreparationCommandHandler
	markItemVerifiedHandler    commands.MarkItemVerifiedCommandHandler
	completePreparationHandler commands.CompletePreparationCommandHandler
	dispatchOrderHandler       commands.DispatchOrderCommandHandler
	confirmDeliveryHandler     commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	addLineItemHandler         commands.AddLineItemCommandHandler
	removeLineItemHandler      commands.RemoveLineItemCommandHandler
	changeItemQuantityHandler  commands.ChangeItemQuantityCommandHandler
	updateTermsHandler         commands.UpdateTermsCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	SubmitOrder         commands.SubmitOrderCommandHandler
	VendorApprove       commands.VendorApproveOrderCommandHandler
	VendorReject        commands.VendorRejectOrderCommandHandler
	AdminApprove        commands.AdminApproveOrderCommandHandler
	AdminReject         commands.AdminRejectOrderCommandHandler
	StartPreparation    commands.StartPreparationCommandHandler
	MarkItemVerified    commands.MarkItemVerifiedCommandHandler
	CompletePreparation commands.CompletePreparationCommandHandler
	DispatchOrder       commands.DispatchOrderCommandHandler
	ConfirmDelivery     commands.ConfirmDeliveryCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	AddLineItem         commands.AddLineItemCommandHandler
	RemoveLineItem      commands.RemoveLineItemCommandHandler
	ChangeItemQuantity  commands.ChangeItemQuantityCommandHandler
	UpdateTerms         commands.UpdateTermsCommandHandler
	GetOrder            queries.GetOrderQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(identity ports.IdentityProvider, handlers ServerHandlers) *Server {
	return &Server{
		identity:                   identity,
		createOrderHandler:         handlers.CreateOrder,
		submitOrderHandler:         handlers.SubmitOrder,
		vendorApproveHandler:       handlers.VendorApprove,
		vendorRejectHandler:        handlers.VendorReject,
		adminApproveHandler:        handlers.AdminApprove,
		adminRejectHandler:         handlers.AdminReject,
		startPreparationHandler:    handlers.StartPreparation,
		markItemVerifiedHandler:    handlers.MarkItemVerified,
		completePreparationHandler: handlers.CompletePreparation,
		dispatchOrderHandler:       handlers.DispatchOrder,
		confirmDeliveryHandler:     handlers.ConfirmDelivery,
		cancelOrderHandler:         handlers.CancelOrder,
		addLineItemHandler:         handlers.AddLineItem,
		removeLineItemHandler:      handlers.RemoveLineItem,
		changeItemQuantityHandler:  handlers.ChangeItemQuantity,
		updateTermsHandler:         handlers.UpdateTerms,
		getOrderHandler:            handlers.GetOrder,
		listOrdersHandler:          handlers.ListOrders,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Every order route
// sits behind the bearer token middleware; /health stays open for probes.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.authenticate)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)

	api.POST("/orders/:id/submit", s.SubmitOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/prepare/start", s.StartPreparation)
	api.POST("/orders/:id/prepare/complete", s.CompletePreparation)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/confirm-delivery", s.ConfirmDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/orders/:id/items", s.AddLineItem)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveLineItem)
	api.PATCH("/orders/:id/items/:itemId", s.ChangeItemQuantity)
	api.POST("/orders/:id/items/:itemId/verify", s.MarkItemVerified)
	api.PATCH("/orders/:id/terms", s.UpdateTerms)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// authenticate resolves the bearer token into an actor and stores it in the
// request context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		by, err := s.identity.Resolve(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		ctx.Set(actorContextKey, by)
		return next(ctx)
	}
}

func (s *Server) actor(ctx echo.Context) actor.Actor {
	by, _ := ctx.Get(actorContextKey).(actor.Actor)
	return by
}

type createOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type customerInfoRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	TaxID        string `json:"tax_id"`
}

type shippingAddressRequest struct {
	FullName     string `json:"full_name"`
	Line1        string `json:"line1"`
	Apartment    string `json:"apartment"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions"`
}

type createOrderRequest struct {
	Customer        customerInfoRequest      `json:"customer"`
	Items           []createOrderItemRequest `json:"items"`
	PaymentMethod   string                   `json:"payment_method"`
	ShippingAddress shippingAddressRequest   `json:"shipping_address"`
	TaxRateBps      int                      `json:"tax_rate_bps"`
	Discount        int64                    `json:"discount"`
	ShippingCost    int64                    `json:"shipping_cost"`
}

// CreateOrder handles POST /api/v1/orders - opens a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	by := s.actor(ctx)

	// Customers always order for themselves; back-office roles may open a
	// draft on a customer's behalf.
	customerID := by.ID()
	if request.Customer.ID != "" && by.Role() != actor.RoleCustomer {
		parsed, err := kernel.UUIDFromString(request.Customer.ID)
		if err != nil {
			return badRequest(ctx, "Invalid customer id")
		}
		customerID = parsed
	}

	customer, err := order.NewCustomerInfo(
		customerID,
		request.Customer.Name,
		request.Customer.Email,
		request.Customer.Phone,
		request.Customer.Organization,
		request.Customer.TaxID,
	)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	address, err := order.NewShippingAddress(
		request.ShippingAddress.FullName,
		request.ShippingAddress.Line1,
		request.ShippingAddress.Apartment,
		request.ShippingAddress.City,
		request.ShippingAddress.Region,
		request.ShippingAddress.PostalCode,
		request.ShippingAddress.Country,
		request.ShippingAddress.Phone,
		request.ShippingAddress.Instructions,
	)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	items := make([]commands.CreateOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id")
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	discount, err := kernel.NewMoney(request.Discount)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}
	shippingCost, err := kernel.NewMoney(request.ShippingCost)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, by, customer, items, paymentMethod, address,
		request.TaxRateBps, discount, shippingCost)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order. Customers
// only see their own orders; a foreign order answers as if it did not exist.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	response, err := s.readOrder(ctx, orderID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by status. Customers are always scoped to their own orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	by := s.actor(ctx)

	var opts []queries.ListOrdersOption
	if rawStatus := ctx.QueryParam("status"); rawStatus != "" {
		status, err := order.StatusFromString(rawStatus)
		if err != nil {
			return badRequest(ctx, "Invalid status filter")
		}
		opts = append(opts, queries.WithStatusFilter(status))
	}

	if by.Role() == actor.RoleCustomer {
		opts = append(opts, queries.WithCustomerFilter(by.ID()))
	} else if rawCustomer := ctx.QueryParam("customer_id"); rawCustomer != "" {
		customerID, err := kernel.UUIDFromString(rawCustomer)
		if err != nil {
			return badRequest(ctx, "Invalid customer filter")
		}
		opts = append(opts, queries.WithCustomerFilter(customerID))
	}

	query, err := queries.NewListOrdersQuery(opts...)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// SubmitOrder handles POST /api/v1/orders/:id/submit - queues a draft for
// vendor review.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewSubmitOrderCommand(orderID, by)
		if err != nil {
			return err
		}
		return s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type reviewRequest struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

// ApproveOrder handles POST /api/v1/orders/:id/approve - records the review
// approval matching the caller's role.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	var request reviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		switch by.Role() {
		case actor.RoleVendor:
			cmd, err := commands.NewVendorApproveOrderCommand(orderID, by, request.Notes)
			if err != nil {
				return err
			}
			return s.vendorApproveHandler.Handle(ctx.Request().Context(), cmd)
		case actor.RoleAdmin:
			cmd, err := commands.NewAdminApproveOrderCommand(orderID, by, request.Notes)
			if err != nil {
				return err
			}
			return s.adminApproveHandler.Handle(ctx.Request().Context(), cmd)
		default:
			return errs.NewForbiddenError(by.Role().String(), "Approve", "")
		}
	})
}

// RejectOrder handles POST /api/v1/orders/:id/reject - records the review
// rejection matching the caller's role. A reason is required.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var request reviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		switch by.Role() {
		case actor.RoleVendor:
			cmd, err := commands.NewVendorRejectOrderCommand(orderID, by, request.Reason)
			if err != nil {
				return err
			}
			return s.vendorRejectHandler.Handle(ctx.Request().Context(), cmd)
		case actor.RoleAdmin:
			cmd, err := commands.NewAdminRejectOrderCommand(orderID, by, request.Reason)
			if err != nil {
				return err
			}
			return s.adminRejectHandler.Handle(ctx.Request().Context(), cmd)
		default:
			return errs.NewForbiddenError(by.Role().String(), "Reject", "")
		}
	})
}

// StartPreparation handles POST /api/v1/orders/:id/prepare/start - moves a
// confirmed order onto the warehouse floor.
func (s *Server) StartPreparation(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewStartPreparationCommand(orderID, by)
		if err != nil {
			return err
		}
		return s.startPreparationHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkItemVerified handles POST /api/v1/orders/:id/items/:itemId/verify -
// ticks one line item off the preparation checklist.
func (s *Server) MarkItemVerified(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewMarkItemVerifiedCommand(orderID, itemID, by)
		if err != nil {
			return err
		}
		return s.markItemVerifiedHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompletePreparation handles POST /api/v1/orders/:id/prepare/complete -
// closes the checklist; fails with 422 naming unverified items.
func (s *Server) CompletePreparation(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewCompletePreparationCommand(orderID, by)
		if err != nil {
			return err
		}
		return s.completePreparationHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type dispatchRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch - ships the order
// under the given tracking number.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	var request dispatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewDispatchOrderCommand(orderID, by, request.TrackingNumber)
		if err != nil {
			return err
		}
		return s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery - closes
// the lifecycle.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewConfirmDeliveryCommand(orderID, by)
		if err != nil {
			return err
		}
		return s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the order if
// preparation has not started yet. A reason is required.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var request cancelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, by, request.Reason)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddLineItem handles POST /api/v1/orders/:id/items - appends a catalog
// product to a draft.
func (s *Server) AddLineItem(ctx echo.Context) error {
	var request addItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewAddLineItemCommand(orderID, productID, request.Quantity, by)
		if err != nil {
			return err
		}
		return s.addLineItemHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RemoveLineItem handles DELETE /api/v1/orders/:id/items/:itemId - drops a
// line item from a draft.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewRemoveLineItemCommand(orderID, itemID, by)
		if err != nil {
			return err
		}
		return s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChangeItemQuantity handles PATCH /api/v1/orders/:id/items/:itemId -
// adjusts a draft line item's quantity.
func (s *Server) ChangeItemQuantity(ctx echo.Context) error {
	var request changeQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		cmd, err := commands.NewChangeItemQuantityCommand(orderID, itemID, request.Quantity, by)
		if err != nil {
			return err
		}
		return s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type updateTermsRequest struct {
	Discount     int64 `json:"discount"`
	ShippingCost int64 `json:"shipping_cost"`
}

// UpdateTerms handles PATCH /api/v1/orders/:id/terms - adjusts discount and
// shipping cost during admin review.
func (s *Server) UpdateTerms(ctx echo.Context) error {
	var request updateTermsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, func(orderID kernel.UUID, by actor.Actor) error {
		discount, err := kernel.NewMoney(request.Discount)
		if err != nil {
			return err
		}
		shippingCost, err := kernel.NewMoney(request.ShippingCost)
		if err != nil {
			return err
		}

		cmd, err := commands.NewUpdateTermsCommand(orderID, by, discount, shippingCost)
		if err != nil {
			return err
		}
		return s.updateTermsHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transition runs one lifecycle command against the order in the :id param
// and answers with the refreshed order record. Repeated commands that
// already took effect come back 200 with the current record.
func (s *Server) transition(ctx echo.Context, run func(orderID kernel.UUID, by actor.Actor) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	by := s.actor(ctx)
	if err := run(orderID, by); err != nil {
		return s.writeDomainError(ctx, err)
	}

	response, err := s.readOrder(ctx, orderID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// readOrder fetches the order record, applying the customer ownership scope.
func (s *Server) readOrder(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	by := s.actor(ctx)
	if by.Role() == actor.RoleCustomer && !response.CustomerID.IsEqual(by.ID()) {
		// A foreign order must be indistinguishable from a missing one.
		return queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}

	return response, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeDomainError maps application errors onto HTTP status codes.
func (s *Server) writeDomainError(ctx echo.Context, err error) error {
	var checklistErr *errs.IncompleteChecklistError
	if errors.As(err, &checklistErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:           http.StatusUnprocessableEntity,
			Message:        checklistErr.Error(),
			MissingItemIDs: checklistErr.MissingItemIDs,
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
