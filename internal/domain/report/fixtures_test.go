package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func newOrder(created time.Time, customer *uuid.UUID) *trade.Order {
	return &trade.Order{
		BaseEntity:   shared.BaseEntity{ID: uuid.New(), CreatedAt: created},
		OrderNumber:  "SO-" + created.Format("20060102"),
		CustomerID:   customer,
		CustomerName: "Dana",
		Status:       trade.OrderStatusDelivered,
		Amount:       decimal.NewFromInt(100),
	}
}

func newLine(order *trade.Order, productID uuid.UUID, qty int, price float64) trade.OrderLine {
	line := trade.OrderLine{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  qty,
		Price:     decimal.NewFromFloat(price),
		Order:     order,
	}
	if order != nil {
		line.OrderID = order.ID
	} else {
		line.OrderID = uuid.New()
	}
	return line
}
