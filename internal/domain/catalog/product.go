package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Product is the read-only analytics view of a storefront product.
// Pricing and analytics computations treat it as an immutable input.
type Product struct {
	shared.BaseEntity
	Name          string           `json:"name"`
	Slug          string           `json:"slug,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	OutOfStock    bool             `json:"out_of_stock"`
	Published     bool             `json:"published"`
}

// HasCost reports whether a unit cost is known for the product
func (p *Product) HasCost() bool {
	return p.CostPrice != nil
}
