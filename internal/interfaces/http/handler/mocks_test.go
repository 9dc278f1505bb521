package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func newTestEngine(h routeRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

// MockAnalyticsReader implements ProductAnalyticsReader for testing
type MockAnalyticsReader struct {
	mock.Mock
}

func (m *MockAnalyticsReader) BuildReport(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) (*report.ProductAnalyticsReport, error) {
	args := m.Called(ctx, productID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ProductAnalyticsReport), args.Error(1)
}

// MockFinanceReader implements FinanceReportReader for testing
type MockFinanceReader struct {
	mock.Mock
}

func (m *MockFinanceReader) BuildReport(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error) {
	args := m.Called(ctx, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.FinanceReport), args.Error(1)
}

// MockPricer implements ProductPricer for testing
type MockPricer struct {
	mock.Mock
}

func (m *MockPricer) PriceProduct(ctx context.Context, productID uuid.UUID) (*promotion.DiscountedProduct, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.DiscountedProduct), args.Error(1)
}

func (m *MockPricer) PriceProducts(ctx context.Context, ids []uuid.UUID) ([]promotion.DiscountedProduct, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]promotion.DiscountedProduct), args.Error(1)
}

// MockHealthChecker implements HealthChecker for testing
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping() error {
	return m.Called().Error(0)
}
