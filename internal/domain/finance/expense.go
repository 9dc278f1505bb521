package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Expense is an operating cost recorded against the store
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseRepository is the read port for expenses
type ExpenseRepository interface {
	// FindExpenses returns expenses created within the range; a nil range returns all
	FindExpenses(ctx context.Context, dateRange *valueobject.DateRange) ([]Expense, error)
}
