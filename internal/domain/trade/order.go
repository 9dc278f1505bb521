package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a customer order as read by reporting.
// Amount is the order total as charged.
type Order struct {
	shared.BaseEntity
	OrderNumber  string          `json:"order_number"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name"`
	Status       OrderStatus     `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
}

// IsDelivered reports whether the order counts as realized revenue
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// DisplayNumber returns the order number, falling back to the ID
func (o *Order) DisplayNumber() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return o.ID.String()
}

// OrderLine is a single product line of an order.
// Order is nil when the parent order could not be loaded.
type OrderLine struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Order     *Order          `json:"order,omitempty"`
}

// Subtotal returns quantity times unit price
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderedAt returns the parent order's creation time, if known
func (l *OrderLine) OrderedAt() (time.Time, bool) {
	if l.Order == nil {
		return time.Time{}, false
	}
	return l.Order.CreatedAt, true
}
