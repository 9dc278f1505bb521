package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductAnalyticsService builds per-product analytics reports
type ProductAnalyticsService struct {
	products catalog.ProductRepository
	orders   trade.OrderRepository
	reviews  review.Repository
	opts     options
}

// NewProductAnalyticsService creates a new ProductAnalyticsService
func NewProductAnalyticsService(
	products catalog.ProductRepository,
	orders trade.OrderRepository,
	reviews review.Repository,
	opts ...Option,
) *ProductAnalyticsService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ProductAnalyticsService{
		products: products,
		orders:   orders,
		reviews:  reviews,
		opts:     o,
	}
}

// BuildReport returns the analytics report for a product, limited to dateRange
// when it is non-nil. It returns nil without error when the product does not exist.
func (s *ProductAnalyticsService) BuildReport(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) (*report.ProductAnalyticsReport, error) {
	log := logger.WithLogger(ctx, s.opts.logger).With(zap.String("product_id", productID.String()))

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			log.Debug("Product not found for analytics")
			return nil, nil
		}
		log.Error("Failed to load product", zap.Error(err))
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	var (
		lines, historyLines     []trade.OrderLine
		reviews, historyReviews []review.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if lines, err = s.orders.FindLinesForProduct(gctx, productID, dateRange); err != nil {
			return fmt.Errorf("failed to load order lines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if reviews, err = s.reviews.FindForProduct(gctx, productID, dateRange); err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}
		return nil
	})
	// The activity window always spans the full history
	if dateRange != nil {
		g.Go(func() error {
			var err error
			if historyLines, err = s.orders.FindLinesForProduct(gctx, productID, nil); err != nil {
				return fmt.Errorf("failed to load order history: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if historyReviews, err = s.reviews.FindForProduct(gctx, productID, nil); err != nil {
				return fmt.Errorf("failed to load review history: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Failed to load product analytics data", zap.Error(err))
		return nil, err
	}
	if dateRange == nil {
		historyLines, historyReviews = lines, reviews
	}

	rep := report.BuildProductAnalytics(report.ProductAnalyticsInput{
		Product:   *product,
		Lines:     lines,
		Reviews:   reviews,
		Activity:  activityTimes(historyLines, historyReviews),
		DateRange: dateRange,
		Location:  s.opts.location,
		Now:       s.opts.clock(),
	})

	log.Debug("Built product analytics",
		zap.Int("order_lines", len(rep.OrderHistory)),
		zap.Int("reviews", rep.Reviews.Count),
		zap.String("total_revenue", rep.TotalRevenue.String()),
	)
	return &rep, nil
}

func activityTimes(lines []trade.OrderLine, reviews []review.Review) []time.Time {
	times := make([]time.Time, 0, len(lines)+len(reviews))
	for _, l := range lines {
		if at, ok := l.OrderedAt(); ok {
			times = append(times, at)
		}
	}
	for _, r := range reviews {
		times = append(times, r.CreatedAt)
	}
	return times
}
