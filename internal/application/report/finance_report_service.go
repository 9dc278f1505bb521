package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const financeCacheKeyPrefix = "report:finance:"

// FinanceReportService builds the store-wide finance report.
// BuildReport always reads the stores; only CachedReport reads the cache.
type FinanceReportService struct {
	orders   trade.OrderRepository
	expenses finance.ExpenseRepository
	cache    shared.Cache
	cacheTTL time.Duration
	opts     options
}

// NewFinanceReportService creates a new FinanceReportService.
// cache may be nil to disable caching.
func NewFinanceReportService(
	orders trade.OrderRepository,
	expenses finance.ExpenseRepository,
	cache shared.Cache,
	cacheTTL time.Duration,
	opts ...Option,
) *FinanceReportService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FinanceReportService{
		orders:   orders,
		expenses: expenses,
		cache:    cache,
		cacheTTL: cacheTTL,
		opts:     o,
	}
}

// CacheKey returns the cache key for the report over dateRange
func CacheKey(dateRange *valueobject.DateRange) string {
	if dateRange == nil {
		return financeCacheKeyPrefix + "all"
	}
	return financeCacheKeyPrefix + dateRange.Key()
}

// BuildReport returns a freshly built finance report for dateRange; a nil range covers all time
func (s *FinanceReportService) BuildReport(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	return s.build(ctx, dateRange)
}

// CachedReport returns the cached report for dateRange, building and storing it on a miss.
// Results may be up to the cache TTL old.
func (s *FinanceReportService) CachedReport(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	if cached := s.fromCache(ctx, dateRange); cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx, dateRange)
}

// Refresh recomputes the report from the stores and replaces any cached copy
func (s *FinanceReportService) Refresh(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	rep, err := s.build(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, dateRange, rep)
	return rep, nil
}

// Cached returns a view whose BuildReport reads through the cache
func (s *FinanceReportService) Cached() *CachedFinanceReports {
	return &CachedFinanceReports{service: s}
}

// CachedFinanceReports serves finance reports through the report cache
type CachedFinanceReports struct {
	service *FinanceReportService
}

// BuildReport delegates to FinanceReportService.CachedReport
func (c *CachedFinanceReports) BuildReport(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	return c.service.CachedReport(ctx, dateRange)
}

func (s *FinanceReportService) build(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	log := logger.WithLogger(ctx, s.opts.logger)

	var (
		orders   []trade.Order
		expenses []finance.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if orders, err = s.orders.FindDeliveredOrders(gctx, dateRange); err != nil {
			return fmt.Errorf("failed to load delivered orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = s.expenses.FindExpenses(gctx, dateRange); err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("Failed to load finance report data", zap.Error(err))
		return nil, err
	}

	rep := report.BuildFinanceReport(orders, expenses, s.opts.location)

	log.Debug("Built finance report",
		zap.Int("orders", len(orders)),
		zap.Int("expenses", len(expenses)),
		zap.String("net_profit", rep.NetProfit.String()),
	)
	return &rep, nil
}

// fromCache returns nil on a miss or when the cached entry is unusable
func (s *FinanceReportService) fromCache(ctx context.Context, dateRange *valueobject.DateRange) *report.FinanceReport {
	if s.cache == nil {
		return nil
	}
	key := CacheKey(dateRange)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			logger.WithLogger(ctx, s.opts.logger).Warn("Finance report cache read failed",
				zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var rep report.FinanceReport
	if err := json.Unmarshal(data, &rep); err != nil {
		logger.WithLogger(ctx, s.opts.logger).Warn("Discarding undecodable cached finance report",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return &rep
}

func (s *FinanceReportService) toCache(ctx context.Context, dateRange *valueobject.DateRange, rep *report.FinanceReport) {
	if s.cache == nil {
		return
	}
	key := CacheKey(dateRange)
	data, err := json.Marshal(rep)
	if err == nil {
		err = s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	if err != nil {
		logger.WithLogger(ctx, s.opts.logger).Warn("Finance report cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}
