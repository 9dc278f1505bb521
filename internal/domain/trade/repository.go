package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// OrderRepository is the read port for orders and order lines
type OrderRepository interface {
	// FindLinesForProduct returns the product's order lines with their parent order attached.
	// A nil range returns the full history.
	FindLinesForProduct(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) ([]OrderLine, error)

	// FindDeliveredOrders returns DELIVERED orders created within the range
	FindDeliveredOrders(ctx context.Context, dateRange *valueobject.DateRange) ([]Order, error)
}
