package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(number string, amount int64, created time.Time) trade.Order {
	return trade.Order{
		BaseEntity:  shared.BaseEntity{ID: uuid.New(), CreatedAt: created},
		OrderNumber: number,
		Status:      trade.OrderStatusDelivered,
		Amount:      decimal.NewFromInt(amount),
	}
}

func expense(amount int64, note string, created time.Time) finance.Expense {
	e := finance.Expense{ID: uuid.New(), Amount: decimal.NewFromInt(amount), CreatedAt: created}
	if note != "" {
		e.Note = &note
	}
	return e
}

func TestBuildFinanceReport(t *testing.T) {
	t.Run("kpis", func(t *testing.T) {
		orders := []trade.Order{
			deliveredOrder("A-1", 300, at(2026, 5, 1, 10)),
			deliveredOrder("A-2", 200, at(2026, 5, 3, 10)),
		}
		expenses := []finance.Expense{
			expense(40, "Packaging", at(2026, 5, 1, 12)),
			expense(60, "", at(2026, 5, 2, 12)),
		}

		rep := BuildFinanceReport(orders, expenses, time.UTC)

		require.Len(t, rep.KPIs, 4)
		assert.Equal(t, KPI{Label: KPITotalRevenue, Value: "500.00"}, rep.KPIs[0])
		assert.Equal(t, KPI{Label: KPITotalExpenses, Value: "100.00"}, rep.KPIs[1])
		assert.Equal(t, KPI{Label: KPITotalDiscounts, Value: "0.00"}, rep.KPIs[2])
		assert.Equal(t, KPI{Label: KPINetProfit, Value: "400.00"}, rep.KPIs[3])
		assert.True(t, rep.NetProfit.Equal(rep.TotalRevenue.Sub(rep.TotalExpenses)))
	})

	t.Run("daily trend", func(t *testing.T) {
		orders := []trade.Order{
			deliveredOrder("A-1", 300, at(2026, 5, 1, 10)),
			deliveredOrder("A-2", 200, at(2026, 5, 3, 10)),
		}
		expenses := []finance.Expense{
			expense(40, "", at(2026, 5, 1, 12)),
			expense(60, "", at(2026, 5, 2, 12)),
		}

		rep := BuildFinanceReport(orders, expenses, time.UTC)

		require.Len(t, rep.TrendData, 3)
		assert.Equal(t, "2026-05-01", rep.TrendData[0].Date)
		assert.True(t, rep.TrendData[0].Revenue.Equal(decimal.NewFromInt(300)))
		assert.True(t, rep.TrendData[0].Expenses.Equal(decimal.NewFromInt(40)))
		assert.Equal(t, "2026-05-02", rep.TrendData[1].Date)
		assert.True(t, rep.TrendData[1].Revenue.IsZero())
		assert.Equal(t, "2026-05-03", rep.TrendData[2].Date)
		assert.True(t, rep.TrendData[2].Expenses.IsZero())
	})

	t.Run("ledger labels and order", func(t *testing.T) {
		noNumber := deliveredOrder("", 10, at(2026, 5, 2, 0))
		orders := []trade.Order{deliveredOrder("A-7", 50, at(2026, 5, 1, 0)), noNumber}
		expenses := []finance.Expense{expense(5, "Courier", at(2026, 5, 3, 0)), expense(6, "", at(2026, 4, 30, 0))}

		rep := BuildFinanceReport(orders, expenses, time.UTC)

		require.Len(t, rep.Transactions, 4)
		assert.Equal(t, LedgerEntryExpense, rep.Transactions[0].Type)
		assert.Equal(t, "Courier", rep.Transactions[0].Note)
		assert.Equal(t, "Order #"+noNumber.ID.String(), rep.Transactions[1].Note)
		assert.Equal(t, LedgerEntryRevenue, rep.Transactions[2].Type)
		assert.Equal(t, "Order #A-7", rep.Transactions[2].Note)
		assert.Equal(t, "-", rep.Transactions[3].Note)
	})

	t.Run("ledger is capped and sorted newest first", func(t *testing.T) {
		var orders []trade.Order
		var expenses []finance.Expense
		base := at(2026, 1, 1, 0)
		for i := 0; i < 80; i++ {
			orders = append(orders, deliveredOrder("", 1, base.Add(time.Duration(i*7)*time.Hour)))
			expenses = append(expenses, expense(1, "", base.Add(time.Duration(i*5)*time.Hour)))
		}

		rep := BuildFinanceReport(orders, expenses, time.UTC)

		require.Len(t, rep.Transactions, MaxLedgerEntries)
		for i := 1; i < len(rep.Transactions); i++ {
			assert.False(t, rep.Transactions[i].CreatedAt.After(rep.Transactions[i-1].CreatedAt))
		}
		assert.True(t, rep.TotalRevenue.Equal(decimal.NewFromInt(80)))
		assert.True(t, rep.NetProfit.IsZero())
	})

	t.Run("ignores orders that are not delivered", func(t *testing.T) {
		pending := deliveredOrder("P-1", 999, at(2026, 5, 1, 0))
		pending.Status = trade.OrderStatusPending

		rep := BuildFinanceReport([]trade.Order{pending}, nil, time.UTC)

		assert.True(t, rep.TotalRevenue.IsZero())
		assert.Empty(t, rep.Transactions)
		assert.Empty(t, rep.TrendData)
	})

	t.Run("empty input", func(t *testing.T) {
		rep := BuildFinanceReport(nil, nil, nil)

		assert.Equal(t, "0.00", rep.KPIs[3].Value)
		assert.NotNil(t, rep.Transactions)
		assert.NotNil(t, rep.TrendData)
	})
}
