package dto

import (
	"time"

	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// DateRangeQuery holds the optional inclusive date filter shared by report endpoints
type DateRangeQuery struct {
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange converts the query into a day-aligned range in loc; nil when both bounds are empty
func (q DateRangeQuery) ToDateRange(loc *time.Location) (*valueobject.DateRange, error) {
	return valueobject.ParseDateRange(q.DateFrom, q.DateTo, loc)
}

// ResolvePromotionsRequest is the body of a batch pricing request
type ResolvePromotionsRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required,min=1,max=100,dive,uuid"`
}

// LedgerCSVRow is one line of the finance transactions export
type LedgerCSVRow struct {
	Date   string `csv:"date"`
	Type   string `csv:"type"`
	Amount string `csv:"amount"`
	Note   string `csv:"note"`
}

// NewLedgerCSVRows converts ledger entries into export rows; timestamps are rendered in loc
func NewLedgerCSVRows(entries []report.LedgerEntry, loc *time.Location) []LedgerCSVRow {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([]LedgerCSVRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LedgerCSVRow{
			Date:   e.CreatedAt.In(loc).Format(time.RFC3339),
			Type:   string(e.Type),
			Amount: e.Amount.StringFixed(2),
			Note:   e.Note,
		})
	}
	return rows
}
