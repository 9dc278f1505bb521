package persistence

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindExpenses returns expenses created within the range, oldest first
func (r *GormExpenseRepository) FindExpenses(ctx context.Context, dateRange *valueobject.DateRange) ([]finance.Expense, error) {
	var rows []models.ExpenseModel
	err := r.db.WithContext(ctx).
		Scopes(createdWithin("created_at", dateRange)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}

	expenses := make([]finance.Expense, len(rows))
	for i := range rows {
		expenses[i] = rows[i].ToDomain()
	}
	return expenses, nil
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
