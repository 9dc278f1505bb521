package promotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PricingService applies the best active promotion to products
type PricingService struct {
	promotions promotion.Repository
	products   catalog.ProductRepository
	resolver   *promotion.Resolver
	clock      func() time.Time
	logger     *zap.Logger
}

// NewPricingService creates a new PricingService
func NewPricingService(
	promotions promotion.Repository,
	products catalog.ProductRepository,
	clock func() time.Time,
	logger *zap.Logger,
) *PricingService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PricingService{
		promotions: promotions,
		products:   products,
		resolver:   promotion.NewResolver(),
		clock:      clock,
		logger:     logger,
	}
}

// ApplyPromotions prices products against the promotions active now.
// The result keeps the input order.
func (s *PricingService) ApplyPromotions(ctx context.Context, products []catalog.Product) ([]promotion.DiscountedProduct, error) {
	if len(products) == 0 {
		return []promotion.DiscountedProduct{}, nil
	}

	active, err := s.activePromotions(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolveAll(products, active), nil
}

// PriceProduct prices a single product by ID.
// It returns nil without error when the product does not exist.
func (s *PricingService) PriceProduct(ctx context.Context, productID uuid.UUID) (*promotion.DiscountedProduct, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	priced, err := s.ApplyPromotions(ctx, []catalog.Product{*product})
	if err != nil {
		return nil, err
	}
	return &priced[0], nil
}

// PriceProducts prices the products with the given IDs.
// Unknown IDs are skipped; the result follows the order of ids.
func (s *PricingService) PriceProducts(ctx context.Context, ids []uuid.UUID) ([]promotion.DiscountedProduct, error) {
	if len(ids) == 0 {
		return []promotion.DiscountedProduct{}, nil
	}

	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[uuid.UUID]catalog.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	ordered := make([]catalog.Product, 0, len(found))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, p)
	}

	return s.ApplyPromotions(ctx, ordered)
}

// activePromotions loads candidates and drops any the store returned that are
// not active at the current instant
func (s *PricingService) activePromotions(ctx context.Context) ([]promotion.Promotion, error) {
	now := s.clock()
	candidates, err := s.promotions.FindActive(ctx, now)
	if err != nil {
		logger.WithLogger(ctx, s.logger).Error("Failed to load active promotions", zap.Error(err))
		return nil, fmt.Errorf("failed to load active promotions: %w", err)
	}

	active := promotion.FilterActive(candidates, now)
	logger.WithLogger(ctx, s.logger).Debug("Loaded active promotions",
		zap.Int("candidates", len(candidates)),
		zap.Int("active", len(active)),
	)
	return active, nil
}
