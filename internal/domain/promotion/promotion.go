package promotion

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// DiscountKind identifies how a promotion's discount value is interpreted
type DiscountKind string

const (
	DiscountKindPercentageProduct DiscountKind = "PERCENTAGE_PRODUCT" // percent off a product's price
	DiscountKindFixedProduct      DiscountKind = "FIXED_PRODUCT"      // flat amount off a product's price
	DiscountKindPercentageOrder   DiscountKind = "PERCENTAGE_ORDER"
	DiscountKindFixedOrder        DiscountKind = "FIXED_ORDER"
	DiscountKindFreeShipping      DiscountKind = "FREE_SHIPPING"
)

// IsValid checks if the kind is a known DiscountKind
func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountKindPercentageProduct, DiscountKindFixedProduct,
		DiscountKindPercentageOrder, DiscountKindFixedOrder, DiscountKindFreeShipping:
		return true
	}
	return false
}

// IsPerProduct reports whether the kind discounts individual products
func (k DiscountKind) IsPerProduct() bool {
	return k == DiscountKindPercentageProduct || k == DiscountKindFixedProduct
}

// String returns the string representation of DiscountKind
func (k DiscountKind) String() string {
	return string(k)
}

var hundred = decimal.NewFromInt(100)

// Promotion is a time-bounded discount offered on a set of products.
// It is maintained by the admin workflow and read-only here.
type Promotion struct {
	shared.BaseEntity
	Title         string          `json:"title"`
	Kind          DiscountKind    `json:"kind"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	ProductIDs    []uuid.UUID     `json:"product_ids"`
	Active        bool            `json:"active"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
}

// IsActiveAt reports whether the promotion is enabled and now lies inside its
// optional [StartDate, EndDate] window
func (p *Promotion) IsActiveAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate != nil && p.StartDate.After(now) {
		return false
	}
	if p.EndDate != nil && p.EndDate.Before(now) {
		return false
	}
	return true
}

// AppliesTo reports whether productID is in the promotion's product set
func (p *Promotion) AppliesTo(productID uuid.UUID) bool {
	return slices.Contains(p.ProductIDs, productID)
}

// DiscountAmount returns the absolute discount the promotion grants on price.
// Fixed discounts are compared by face value, not capped at price.
func (p *Promotion) DiscountAmount(price decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case DiscountKindPercentageProduct:
		return price.Mul(p.DiscountValue).Div(hundred)
	case DiscountKindFixedProduct:
		return p.DiscountValue
	default:
		return decimal.Zero
	}
}

// FilterActive returns the promotions active at now, preserving order
func FilterActive(promotions []Promotion, now time.Time) []Promotion {
	active := make([]Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.IsActiveAt(now) {
			active = append(active, p)
		}
	}
	return active
}
