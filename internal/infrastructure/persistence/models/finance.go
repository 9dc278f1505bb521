package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for the expenses table
type ExpenseModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Amount    decimal.NullDecimal `gorm:"type:decimal(18,2)"`
	Note      *string             `gorm:"type:text"`
	CreatedAt time.Time           `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense; a null amount counts as zero
func (m *ExpenseModel) ToDomain() finance.Expense {
	amount := decimal.Zero
	if m.Amount.Valid {
		amount = m.Amount.Decimal
	}
	return finance.Expense{
		ID:        m.ID,
		Amount:    amount,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:        e.ID,
		Amount:    decimal.NewNullDecimal(e.Amount),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
