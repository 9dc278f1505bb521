package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
)

// MonthlySales is revenue for one calendar month (YYYY-MM)
type MonthlySales struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// SalesAggregate summarizes a product's order lines
type SalesAggregate struct {
	TotalRevenue        decimal.Decimal
	TotalQuantity       int64
	UniqueOrderCount    int
	UniqueCustomerCount int
	SalesByMonth        []MonthlySales
	Lines               []trade.OrderLine // lines that passed the range filter, in input order
}

// AggregateSales totals order lines whose parent order falls inside dateRange.
// With a nil range every line is included; with a range, lines without a
// parent order are dropped. Months are bucketed in loc.
func AggregateSales(lines []trade.OrderLine, dateRange *valueobject.DateRange, loc *time.Location) SalesAggregate {
	if loc == nil {
		loc = time.UTC
	}

	agg := SalesAggregate{
		TotalRevenue: decimal.Zero,
		SalesByMonth: []MonthlySales{},
		Lines:        make([]trade.OrderLine, 0, len(lines)),
	}
	orders := make(map[uuid.UUID]struct{})
	customers := make(map[uuid.UUID]struct{})
	months := newSumBuckets()

	for _, line := range lines {
		orderedAt, hasOrder := line.OrderedAt()
		if dateRange != nil && (!hasOrder || !dateRange.Contains(orderedAt)) {
			continue
		}

		subtotal := line.Subtotal()
		agg.Lines = append(agg.Lines, line)
		agg.TotalRevenue = agg.TotalRevenue.Add(subtotal)
		agg.TotalQuantity += int64(line.Quantity)
		orders[line.OrderID] = struct{}{}

		// An orphan line has no date to bucket; it still counts toward totals,
		// so SalesByMonth sums to TotalRevenue only when every line has an order.
		if !hasOrder {
			continue
		}
		if line.Order.CustomerID != nil {
			customers[*line.Order.CustomerID] = struct{}{}
		}
		months.add(orderedAt.In(loc).Format(valueobject.MonthLayout), subtotal)
	}

	agg.UniqueOrderCount = len(orders)
	agg.UniqueCustomerCount = len(customers)
	for _, b := range months.sorted() {
		agg.SalesByMonth = append(agg.SalesByMonth, MonthlySales{Month: b.key, Sales: b.amount})
	}
	return agg
}
