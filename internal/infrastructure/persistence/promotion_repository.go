package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPromotionRepository implements promotion.Repository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindActive returns enabled promotions whose optional window contains now,
// oldest first so resolution ties stay deterministic
func (r *GormPromotionRepository) FindActive(ctx context.Context, now time.Time) ([]promotion.Promotion, error) {
	var rows []models.PromotionModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date >= ?)", now).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query active promotions: %w", err)
	}

	promotions := make([]promotion.Promotion, len(rows))
	for i := range rows {
		promotions[i] = *rows[i].ToDomain()
	}
	return promotions, nil
}

var _ promotion.Repository = (*GormPromotionRepository)(nil)
