package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
)

// OrderSummary is the parent order shown next to an order line
type OrderSummary struct {
	CreatedAt    time.Time         `json:"created_at"`
	CustomerName string            `json:"customer_name"`
	Status       trade.OrderStatus `json:"status"`
	OrderNumber  string            `json:"order_number"`
}

// OrderHistoryEntry is one sold line of the product
type OrderHistoryEntry struct {
	ID       uuid.UUID       `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	OrderID  uuid.UUID       `json:"order_id"`
	Order    *OrderSummary   `json:"order"`
}

// ProductAnalyticsReport is the per-product sales, profit and review report.
// Monetary values are rounded to 2 decimal places.
type ProductAnalyticsReport struct {
	Product             catalog.Product     `json:"product"`
	TotalRevenue        decimal.Decimal     `json:"total_revenue"`
	TotalOrders         int                 `json:"total_orders"`
	TotalCustomers      int                 `json:"total_customers"`
	TotalQuantity       int64               `json:"total_quantity"`
	SalesByMonth        []MonthlySales      `json:"sales_by_month"`
	OrderHistory        []OrderHistoryEntry `json:"order_history"`
	Reviews             ReviewSummary       `json:"reviews"`
	TotalCOGS           decimal.Decimal     `json:"total_cogs"`
	TotalProfit         decimal.Decimal     `json:"total_profit"`
	AverageProfitMargin decimal.Decimal     `json:"average_profit_margin"`
	ActivityStartDate   string              `json:"activity_start_date"`
	ActivityEndDate     string              `json:"activity_end_date"`
}

// ProductAnalyticsInput carries everything needed to build a product report.
// Lines and Reviews may be pre-filtered by the store; Activity must hold the
// unfiltered order and review timestamps of the product.
type ProductAnalyticsInput struct {
	Product   catalog.Product
	Lines     []trade.OrderLine
	Reviews   []review.Review
	Activity  []time.Time
	DateRange *valueobject.DateRange
	Location  *time.Location
	Now       time.Time
}

// BuildProductAnalytics assembles the product report from sales, review and
// profit aggregates
func BuildProductAnalytics(in ProductAnalyticsInput) ProductAnalyticsReport {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	sales := AggregateSales(in.Lines, in.DateRange, loc)
	reviews := AggregateReviews(in.Reviews, in.DateRange)
	profit := ComputeProfit(sales.TotalRevenue, sales.TotalQuantity, in.Product.CostPrice).Rounded()
	start, end := ActivityWindow(in.Product.CreatedAt, in.Activity, in.Now)

	monthly := make([]MonthlySales, len(sales.SalesByMonth))
	for i, m := range sales.SalesByMonth {
		monthly[i] = MonthlySales{Month: m.Month, Sales: m.Sales.Round(2)}
	}

	return ProductAnalyticsReport{
		Product:             in.Product,
		TotalRevenue:        profit.Revenue,
		TotalOrders:         sales.UniqueOrderCount,
		TotalCustomers:      sales.UniqueCustomerCount,
		TotalQuantity:       sales.TotalQuantity,
		SalesByMonth:        monthly,
		OrderHistory:        orderHistory(sales.Lines),
		Reviews:             reviews,
		TotalCOGS:           profit.COGS,
		TotalProfit:         profit.Profit,
		AverageProfitMargin: profit.Margin,
		ActivityStartDate:   start.In(loc).Format(valueobject.DateLayout),
		ActivityEndDate:     end.In(loc).Format(valueobject.DateLayout),
	}
}

// ActivityWindow returns the first and last activity instants of a product.
// The window opens at the earliest of creation and activity. It closes at the
// latest activity, or at now when there is none, and never before creation
// or the window start.
func ActivityWindow(createdAt time.Time, activity []time.Time, now time.Time) (time.Time, time.Time) {
	start := createdAt
	for _, t := range activity {
		if t.Before(start) {
			start = t
		}
	}

	end := now
	if len(activity) > 0 {
		end = activity[0]
		for _, t := range activity[1:] {
			if t.After(end) {
				end = t
			}
		}
	}
	if end.Before(createdAt) {
		end = createdAt
	}
	if end.Before(start) {
		end = start
	}
	return start, end
}

func orderHistory(lines []trade.OrderLine) []OrderHistoryEntry {
	history := make([]OrderHistoryEntry, 0, len(lines))
	for _, l := range lines {
		entry := OrderHistoryEntry{
			ID:       l.ID,
			Quantity: l.Quantity,
			Price:    l.Price,
			OrderID:  l.OrderID,
		}
		if l.Order != nil {
			entry.Order = &OrderSummary{
				CreatedAt:    l.Order.CreatedAt,
				CustomerName: l.Order.CustomerName,
				Status:       l.Order.Status,
				OrderNumber:  l.Order.OrderNumber,
			}
		}
		history = append(history, entry)
	}
	return history
}
