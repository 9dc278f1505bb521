package report

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ProfitSummary holds revenue, cost of goods sold and the resulting profit.
// Margin is a percentage of revenue.
type ProfitSummary struct {
	Revenue decimal.Decimal `json:"revenue"`
	COGS    decimal.Decimal `json:"cogs"`
	Profit  decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"`
}

// ComputeProfit derives profit from revenue and units sold.
// An unknown unit cost means zero COGS; zero or negative revenue means zero margin.
func ComputeProfit(revenue decimal.Decimal, quantity int64, unitCost *decimal.Decimal) ProfitSummary {
	cogs := decimal.Zero
	if unitCost != nil {
		cogs = unitCost.Mul(decimal.NewFromInt(quantity))
	}
	profit := revenue.Sub(cogs)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	return ProfitSummary{
		Revenue: revenue,
		COGS:    cogs,
		Profit:  profit,
		Margin:  margin,
	}
}

// Rounded returns the summary with every value rounded to 2 decimal places
func (p ProfitSummary) Rounded() ProfitSummary {
	return ProfitSummary{
		Revenue: p.Revenue.Round(2),
		COGS:    p.COGS.Round(2),
		Profit:  p.Profit.Round(2),
		Margin:  p.Margin.Round(2),
	}
}
