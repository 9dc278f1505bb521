package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements review.Repository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindForProduct returns the product's reviews with reviewer names, newest first
func (r *GormReviewRepository) FindForProduct(ctx context.Context, productID uuid.UUID, dateRange *valueobject.DateRange) ([]review.Review, error) {
	var rows []models.ReviewModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Scopes(createdWithin("created_at", dateRange)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	reviews := make([]review.Review, len(rows))
	for i := range rows {
		reviews[i] = rows[i].ToDomain()
	}
	return reviews, nil
}

var _ review.Repository = (*GormReviewRepository)(nil)
