package report

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
)

// MaxLedgerEntries caps the number of transactions listed in a finance report
const MaxLedgerEntries = 100

// KPI labels, in report order
const (
	KPITotalRevenue   = "Total revenue"
	KPITotalExpenses  = "Total expenses"
	KPITotalDiscounts = "Total discounts"
	KPINetProfit      = "Net profit"
)

// LedgerEntryType distinguishes income from spending in the ledger
type LedgerEntryType string

const (
	LedgerEntryRevenue LedgerEntryType = "revenue"
	LedgerEntryExpense LedgerEntryType = "expense"
)

// KPI is a headline figure formatted for display
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DailyTrend holds revenue and expense subtotals for one day (YYYY-MM-DD)
type DailyTrend struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// LedgerEntry is a single revenue or expense transaction
type LedgerEntry struct {
	Type      LedgerEntryType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// FinanceReport is the store-wide revenue and expense report
type FinanceReport struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	KPIs           []KPI           `json:"kpis"`
	TrendData      []DailyTrend    `json:"trend_data"`
	Transactions   []LedgerEntry   `json:"transactions"`
}

// BuildFinanceReport aggregates delivered orders and expenses into a finance report.
// Orders that are not delivered are ignored. Days are bucketed in loc.
func BuildFinanceReport(orders []trade.Order, expenses []finance.Expense, loc *time.Location) FinanceReport {
	if loc == nil {
		loc = time.UTC
	}

	revenue := decimal.Zero
	revenueByDay := newSumBuckets()
	expensesByDay := newSumBuckets()
	ledger := make([]LedgerEntry, 0, len(orders)+len(expenses))

	for _, o := range orders {
		if !o.IsDelivered() {
			continue
		}
		revenue = revenue.Add(o.Amount)
		revenueByDay.add(o.CreatedAt.In(loc).Format(valueobject.DateLayout), o.Amount)
		ledger = append(ledger, LedgerEntry{
			Type:      LedgerEntryRevenue,
			Amount:    o.Amount,
			Note:      "Order #" + o.DisplayNumber(),
			CreatedAt: o.CreatedAt,
		})
	}

	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
		expensesByDay.add(e.CreatedAt.In(loc).Format(valueobject.DateLayout), e.Amount)
		note := "-"
		if e.Note != nil && *e.Note != "" {
			note = *e.Note
		}
		ledger = append(ledger, LedgerEntry{
			Type:      LedgerEntryExpense,
			Amount:    e.Amount,
			Note:      note,
			CreatedAt: e.CreatedAt,
		})
	}

	slices.SortStableFunc(ledger, func(a, b LedgerEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(ledger) > MaxLedgerEntries {
		ledger = ledger[:MaxLedgerEntries]
	}

	discounts := decimal.Zero
	net := revenue.Sub(spent)

	return FinanceReport{
		TotalRevenue:   revenue,
		TotalExpenses:  spent,
		TotalDiscounts: discounts,
		NetProfit:      net,
		KPIs: []KPI{
			{Label: KPITotalRevenue, Value: revenue.StringFixed(2)},
			{Label: KPITotalExpenses, Value: spent.StringFixed(2)},
			{Label: KPITotalDiscounts, Value: discounts.StringFixed(2)},
			{Label: KPINetProfit, Value: net.StringFixed(2)},
		},
		TrendData:    dailyTrend(revenueByDay, expensesByDay),
		Transactions: ledger,
	}
}

func dailyTrend(revenue, expenses sumBuckets) []DailyTrend {
	days := newSumBuckets()
	for k := range revenue {
		days.add(k, decimal.Zero)
	}
	for k := range expenses {
		days.add(k, decimal.Zero)
	}

	trend := make([]DailyTrend, 0, len(days))
	for _, d := range days.sorted() {
		trend = append(trend, DailyTrend{
			Date:     d.key,
			Revenue:  revenue.get(d.key),
			Expenses: expenses.get(d.key),
		})
	}
	return trend
}
