// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string name so the row is readable and the raw
// query side can filter without an enum mapping. Totals are stored for the
// read side only; the aggregate recomputes them on restore.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber string      `gorm:"uniqueIndex"`
	Status      string      `gorm:"index"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`

	PaymentMethod string
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`

	TaxRateBps   int
	Subtotal     int64
	Tax          int64
	Discount     int64
	ShippingCost int64
	Total        int64

	TrackingNumber string
	VendorNotes    string
	AdminNotes     string

	SubmittedAt          *time.Time
	VendorApprovedAt     *time.Time
	VendorApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	AdminApprovedAt      *time.Time
	AdminApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt           *time.Time
	RejectedBy           *uuid.UUID `gorm:"type:uuid"`
	RejectionReason      string
	CancelledAt          *time.Time
	CancelledBy          *uuid.UUID `gorm:"type:uuid"`
	CancellationReason   string
	PreparationStartedAt *time.Time
	ShippedAt            *time.Time `gorm:"index"`
	ConfirmedAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []LineItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded buyer contact block within the order
// table.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Email        string
	Phone        string
	Organization string
	TaxID        string
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	FullName     string
	Line1        string
	Apartment    string
	City         string
	Region       string
	PostalCode   string
	Country      string
	Phone        string
	Instructions string
}

// LineItemDTO represents one order line item row, including its preparation
// checklist mark.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	SKU       string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
	Verified  bool
}

// TableName maps line items to the "order_items" table.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO is one appended row of the transition audit log. Rows are
// insert-only; the surrogate key preserves recording order.
type StatusChangeDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorName  string
	OccurredAt time.Time
}

// TableName maps the audit log to the "status_changes" table.
func (StatusChangeDTO) TableName() string {
	return "status_changes"
}

// fromDomain converts an order domain aggregate to its database
// representation, including line items with their verification marks.
func fromDomain(aggregate *order.Order) OrderDTO {
	verified := make(map[uuid.UUID]struct{})
	for _, itemID := range aggregate.VerifiedItemIDs() {
		verified[itemID.Bytes()] = struct{}{}
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemID := item.ID().Bytes()
		_, isVerified := verified[itemID]
		items = append(items, LineItemDTO{
			ID:        itemID,
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			SKU:       item.SKU(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Subtotal:  item.Subtotal().Amount(),
			Verified:  isVerified,
		})
	}

	totals := aggregate.Totals()
	customer := aggregate.Customer()
	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status().String(),
		Customer: CustomerDTO{
			ID:           customer.ID().Bytes(),
			Name:         customer.Name(),
			Email:        customer.Email(),
			Phone:        customer.Phone(),
			Organization: customer.Organization(),
			TaxID:        customer.TaxID(),
		},
		PaymentMethod: aggregate.PaymentMethod().String(),
		Address: AddressDTO{
			FullName:     address.FullName(),
			Line1:        address.Line1(),
			Apartment:    address.Apartment(),
			City:         address.City(),
			Region:       address.Region(),
			PostalCode:   address.PostalCode(),
			Country:      address.Country(),
			Phone:        address.Phone(),
			Instructions: address.Instructions(),
		},
		TaxRateBps:           aggregate.TaxRateBps(),
		Subtotal:             totals.Subtotal.Amount(),
		Tax:                  totals.Tax.Amount(),
		Discount:             totals.Discount.Amount(),
		ShippingCost:         totals.ShippingCost.Amount(),
		Total:                totals.Total.Amount(),
		TrackingNumber:       aggregate.TrackingNumber(),
		VendorNotes:          aggregate.VendorNotes(),
		AdminNotes:           aggregate.AdminNotes(),
		SubmittedAt:          aggregate.SubmittedAt(),
		VendorApprovedAt:     aggregate.VendorApprovedAt(),
		VendorApprovedBy:     uuidPtr(aggregate.VendorApprovedBy()),
		AdminApprovedAt:      aggregate.AdminApprovedAt(),
		AdminApprovedBy:      uuidPtr(aggregate.AdminApprovedBy()),
		RejectedAt:           aggregate.RejectedAt(),
		RejectedBy:           uuidPtr(aggregate.RejectedBy()),
		RejectionReason:      aggregate.RejectionReason(),
		CancelledAt:          aggregate.CancelledAt(),
		CancelledBy:          uuidPtr(aggregate.CancelledBy()),
		CancellationReason:   aggregate.CancellationReason(),
		PreparationStartedAt: aggregate.PreparationStartedAt(),
		ShippedAt:            aggregate.ShippedAt(),
		ConfirmedAt:          aggregate.ConfirmedAt(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		Items:                items,
	}
}

// changesFromDomain converts the transitions recorded during the current
// command into audit log rows.
func changesFromDomain(aggregate *order.Order) []StatusChangeDTO {
	changes := aggregate.StatusChanges()
	dtos := make([]StatusChangeDTO, 0, len(changes))
	for _, change := range changes {
		dtos = append(dtos, StatusChangeDTO{
			OrderID:    aggregate.ID().Bytes(),
			FromStatus: change.From.String(),
			ToStatus:   change.To.String(),
			ActorID:    change.ActorID.Bytes(),
			ActorName:  change.ActorName,
			OccurredAt: change.At,
		})
	}
	return dtos
}

// toDomain converts a database DTO (with items loaded) back into an order
// aggregate using RestoreOrder. Totals are recomputed during restore.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerInfo(
		customerID,
		dto.Customer.Name,
		dto.Customer.Email,
		dto.Customer.Phone,
		dto.Customer.Organization,
		dto.Customer.TaxID,
	)
	if err != nil {
		return nil, err
	}

	address, err := order.NewShippingAddress(
		dto.Address.FullName,
		dto.Address.Line1,
		dto.Address.Apartment,
		dto.Address.City,
		dto.Address.Region,
		dto.Address.PostalCode,
		dto.Address.Country,
		dto.Address.Phone,
		dto.Address.Instructions,
	)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	verified := make([]kernel.UUID, 0)
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			itemID, productID, itemDTO.Name, itemDTO.SKU, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)

		if itemDTO.Verified {
			verified = append(verified, itemID)
		}
	}

	state := order.RestoreState{
		TrackingNumber:       dto.TrackingNumber,
		VerifiedItemIDs:      verified,
		VendorNotes:          dto.VendorNotes,
		AdminNotes:           dto.AdminNotes,
		SubmittedAt:          dto.SubmittedAt,
		VendorApprovedAt:     dto.VendorApprovedAt,
		VendorApprovedBy:     kernelUUIDPtr(dto.VendorApprovedBy),
		AdminApprovedAt:      dto.AdminApprovedAt,
		AdminApprovedBy:      kernelUUIDPtr(dto.AdminApprovedBy),
		RejectedAt:           dto.RejectedAt,
		RejectedBy:           kernelUUIDPtr(dto.RejectedBy),
		RejectionReason:      dto.RejectionReason,
		CancelledAt:          dto.CancelledAt,
		CancelledBy:          kernelUUIDPtr(dto.CancelledBy),
		CancellationReason:   dto.CancellationReason,
		PreparationStartedAt: dto.PreparationStartedAt,
		ShippedAt:            dto.ShippedAt,
		ConfirmedAt:          dto.ConfirmedAt,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, customer, items, paymentMethod, address,
		dto.TaxRateBps, discount, shippingCost, status, state)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil
	}
	return &converted
}
