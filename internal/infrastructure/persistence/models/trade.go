package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/trade"
)

// OrderModel is the persistence model for the orders table.
// Legacy rows may lack an order number, customer name, or amount.
type OrderModel struct {
	BaseModel
	OrderNumber  *string             `gorm:"type:varchar(50);index"`
	CustomerID   *uuid.UUID          `gorm:"type:uuid;index"`
	CustomerName *string             `gorm:"type:varchar(200)"`
	Status       string              `gorm:"type:varchar(20);not null;index"`
	Amount       decimal.NullDecimal `gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	amount := decimal.Zero
	if m.Amount.Valid {
		amount = m.Amount.Decimal
	}
	return &trade.Order{
		BaseEntity:   m.BaseModel.ToDomain(),
		OrderNumber:  stringOrEmpty(m.OrderNumber),
		CustomerID:   m.CustomerID,
		CustomerName: stringOrEmpty(m.CustomerName),
		Status:       trade.OrderStatus(m.Status),
		Amount:       amount,
	}
}

// OrderModelFromDomain creates a persistence model from a domain Order
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Amount:     decimal.NewNullDecimal(o.Amount),
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	if o.OrderNumber != "" {
		m.OrderNumber = &o.OrderNumber
	}
	if o.CustomerName != "" {
		m.CustomerName = &o.CustomerName
	}
	return m
}

// OrderItemModel is the persistence model for the order_items table
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;default:0"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Order     *OrderModel     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderLine.
// Order stays nil when the parent order was not loaded or no longer exists.
func (m *OrderItemModel) ToDomain() trade.OrderLine {
	line := trade.OrderLine{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
	if m.Order != nil {
		line.Order = m.Order.ToDomain()
	}
	return line
}

// OrderItemModelFromDomain creates a persistence model from a domain OrderLine
func OrderItemModelFromDomain(l *trade.OrderLine) *OrderItemModel {
	return &OrderItemModel{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Price:     l.Price,
	}
}
