package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Review is a customer rating of a product.
// ReviewerName is empty when the reviewing user could not be resolved.
type Review struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository is the read port for reviews
type Repository interface {
	// FindForProduct returns the product's reviews created within the range.
	// A nil range returns all reviews.
	FindForProduct(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) ([]Review, error)
}
