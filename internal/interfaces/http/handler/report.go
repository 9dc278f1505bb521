package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ProductAnalyticsReader builds per-product analytics
type ProductAnalyticsReader interface {
	BuildReport(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) (*report.ProductAnalyticsReport, error)
}

// FinanceReportReader builds the store-wide finance report
type FinanceReportReader interface {
	BuildReport(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error)
}

// ReportHandler handles analytics and finance report endpoints
type ReportHandler struct {
	BaseHandler
	analytics ProductAnalyticsReader
	finance   FinanceReportReader
	location  *time.Location
}

// NewReportHandler creates a new ReportHandler; dates in queries are read in loc
func NewReportHandler(analytics ProductAnalyticsReader, finance FinanceReportReader, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{
		analytics: analytics,
		finance:   finance,
		location:  loc,
	}
}

// RegisterRoutes mounts the report endpoints
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/analytics", h.GetProductAnalytics)

	reports := rg.Group("/reports")
	reports.GET("/finance", h.GetFinanceReport)
	reports.GET("/finance/transactions.csv", h.ExportFinanceTransactions)
}

// GetProductAnalytics godoc
// @Summary      Get product analytics
// @Description  Get sales, profit, review and order history analytics for one product
// @Tags         reports
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        date_from query string false "Start date (YYYY-MM-DD)"
// @Param        date_to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.ProductAnalyticsReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id}/analytics [get]
func (h *ReportHandler) GetProductAnalytics(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	dateRange, ok := h.dateRange(c)
	if !ok {
		return
	}

	rep, err := h.analytics.BuildReport(c.Request.Context(), productID, dateRange)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if rep == nil {
		h.NotFound(c, "Product not found")
		return
	}

	h.Success(c, rep)
}

// GetFinanceReport godoc
// @Summary      Get finance report
// @Description  Get revenue, expense and profit KPIs, the daily trend and recent transactions
// @Tags         reports
// @Produce      json
// @Param        date_from query string false "Start date (YYYY-MM-DD)"
// @Param        date_to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.FinanceReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/finance [get]
func (h *ReportHandler) GetFinanceReport(c *gin.Context) {
	dateRange, ok := h.dateRange(c)
	if !ok {
		return
	}

	rep, err := h.finance.BuildReport(c.Request.Context(), dateRange)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rep)
}

// ExportFinanceTransactions godoc
// @Summary      Export finance transactions
// @Description  Download the finance report ledger as CSV
// @Tags         reports
// @Produce      text/csv
// @Param        date_from query string false "Start date (YYYY-MM-DD)"
// @Param        date_to query string false "End date (YYYY-MM-DD)"
// @Success      200 {file} file
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/finance/transactions.csv [get]
func (h *ReportHandler) ExportFinanceTransactions(c *gin.Context) {
	dateRange, ok := h.dateRange(c)
	if !ok {
		return
	}

	rep, err := h.finance.BuildReport(c.Request.Context(), dateRange)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	body, err := gocsv.MarshalBytes(dto.NewLedgerCSVRows(rep.Transactions, h.location))
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to encode ledger CSV", zap.Error(err))
		h.InternalError(c, "Failed to export transactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(dateRange)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// dateRange binds date_from/date_to; it writes the error response and returns false on bad input
func (h *ReportHandler) dateRange(c *gin.Context) (*valueobject.DateRange, bool) {
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return nil, false
	}
	dateRange, err := q.ToDateRange(h.location)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationRange, err.Error())
		return nil, false
	}
	return dateRange, true
}

func exportFilename(dateRange *valueobject.DateRange) string {
	if dateRange == nil {
		return "finance-transactions-all.csv"
	}
	return "finance-transactions-" + dateRange.Key() + ".csv"
}
