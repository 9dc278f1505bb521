package promotion

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// AppliedPromotion identifies the promotion that produced a discount
type AppliedPromotion struct {
	PromotionID    uuid.UUID `json:"promotion_id"`
	PromotionTitle string    `json:"promotion_title"`
}

// DiscountedProduct is a product priced against the promotions that apply to it.
// Promotion is nil when no promotion applied.
type DiscountedProduct struct {
	catalog.Product
	OriginalPrice      decimal.Decimal   `json:"original_price"`
	DiscountedPrice    decimal.Decimal   `json:"discounted_price"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage"`
	Promotion          *AppliedPromotion `json:"promotion,omitempty"`
}

// HasDiscount reports whether a promotion was applied
func (d DiscountedProduct) HasDiscount() bool {
	return d.Promotion != nil
}

// Resolver picks the single best per-product promotion for a product.
// Candidates must already be filtered to the active ones; Resolver does not
// look at activity flags or dates.
type Resolver struct{}

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve prices product against candidates.
// The winner is the candidate with the strictly greatest absolute discount;
// on ties the earliest candidate in input order is kept.
func (r *Resolver) Resolve(product catalog.Product, candidates []Promotion) DiscountedProduct {
	price := product.Price

	var best *Promotion
	var bestAmount decimal.Decimal
	for i := range candidates {
		c := &candidates[i]
		if !c.Kind.IsPerProduct() || !c.AppliesTo(product.ID) {
			continue
		}
		amount := c.DiscountAmount(price)
		if best == nil || amount.GreaterThan(bestAmount) {
			best = c
			bestAmount = amount
		}
	}

	if best == nil {
		return DiscountedProduct{
			Product:            product,
			OriginalPrice:      price,
			DiscountedPrice:    price,
			DiscountPercentage: decimal.Zero,
		}
	}

	discounted, percentage := apply(price, best)
	return DiscountedProduct{
		Product:            product,
		OriginalPrice:      price,
		DiscountedPrice:    discounted,
		DiscountPercentage: percentage,
		Promotion: &AppliedPromotion{
			PromotionID:    best.ID,
			PromotionTitle: best.Title,
		},
	}
}

// ResolveAll prices each product against the same candidate set
func (r *Resolver) ResolveAll(products []catalog.Product, candidates []Promotion) []DiscountedProduct {
	out := make([]DiscountedProduct, len(products))
	for i, p := range products {
		out[i] = r.Resolve(p, candidates)
	}
	return out
}

// apply returns the discounted price and the displayed discount percentage.
// A zero price yields a 0% display for fixed discounts.
func apply(price decimal.Decimal, p *Promotion) (decimal.Decimal, decimal.Decimal) {
	switch p.Kind {
	case DiscountKindPercentageProduct:
		factor := decimal.NewFromInt(1).Sub(p.DiscountValue.Div(hundred))
		return price.Mul(factor), p.DiscountValue
	case DiscountKindFixedProduct:
		discounted := decimal.Max(decimal.Zero, price.Sub(p.DiscountValue))
		if price.IsZero() {
			return discounted, decimal.Zero
		}
		return discounted, p.DiscountValue.Div(price).Mul(hundred).Round(0)
	default:
		return price, decimal.Zero
	}
}
