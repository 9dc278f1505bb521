package scheduler

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// FinanceReportRefresher rebuilds a finance report and stores it in the report cache
type FinanceReportRefresher interface {
	Refresh(ctx context.Context, dateRange *valueobject.DateRange) (*report.FinanceReport, error)
}

// ReportWarmer executes cache warm jobs
type ReportWarmer struct {
	finance FinanceReportRefresher
	logger  *zap.Logger
}

// NewReportWarmer creates a warmer for finance reports
func NewReportWarmer(finance FinanceReportRefresher, logger *zap.Logger) *ReportWarmer {
	return &ReportWarmer{finance: finance, logger: logger}
}

// Execute implements JobExecutor
func (w *ReportWarmer) Execute(ctx context.Context, job *Job) error {
	switch job.Kind {
	case JobKindFinanceReportWarm:
		rep, err := w.finance.Refresh(ctx, job.DateRange)
		if err != nil {
			return fmt.Errorf("refresh finance report %s: %w", job.RangeKey(), err)
		}
		w.logger.Debug("Finance report warmed",
			zap.String("range", job.RangeKey()),
			zap.String("net_profit", rep.NetProfit.StringFixed(2)),
			zap.Int("transactions", len(rep.Transactions)),
		)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownJobKind, job.Kind)
	}
}

var _ JobExecutor = (*ReportWarmer)(nil)
