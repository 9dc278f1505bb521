package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindLinesForProduct returns the product's order lines with their orders loaded.
// With a range only lines whose order was created inside it are returned;
// without one, lines whose order no longer exists are kept with a nil Order.
func (r *GormOrderRepository) FindLinesForProduct(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) ([]trade.OrderLine, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderItemModel{}).
		Preload("Order").
		Where("product_id = ?", productID)

	if dateRange != nil {
		orders := r.db.Model(&models.OrderModel{}).Select("id").Scopes(createdWithin("created_at", dateRange))
		query = query.Where("order_id IN (?)", orders)
	}

	var rows []models.OrderItemModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}

	lines := make([]trade.OrderLine, len(rows))
	for i := range rows {
		lines[i] = rows[i].ToDomain()
	}
	return lines, nil
}

// FindDeliveredOrders returns delivered orders created within the range, oldest first
func (r *GormOrderRepository) FindDeliveredOrders(ctx context.Context, dateRange *valueobject.DateRange) ([]trade.Order, error) {
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(trade.OrderStatusDelivered)).
		Scopes(createdWithin("created_at", dateRange)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query delivered orders: %w", err)
	}

	orders := make([]trade.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
