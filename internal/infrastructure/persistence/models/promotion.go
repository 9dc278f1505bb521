package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/promotion"
)

// PromotionModel is the persistence model for the promotions table.
// ProductIDs is stored as a JSON array.
type PromotionModel struct {
	BaseModel
	Title         string          `gorm:"type:varchar(200);not null"`
	Kind          string          `gorm:"type:varchar(30);not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProductIDs    []uuid.UUID     `gorm:"type:jsonb;serializer:json"`
	Active        bool            `gorm:"not null;default:false;index"`
	StartDate     *time.Time
	EndDate       *time.Time
}

// TableName returns the table name for GORM
func (PromotionModel) TableName() string {
	return "promotions"
}

// ToDomain converts the persistence model to a domain Promotion
func (m *PromotionModel) ToDomain() *promotion.Promotion {
	ids := m.ProductIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &promotion.Promotion{
		BaseEntity:    m.BaseModel.ToDomain(),
		Title:         m.Title,
		Kind:          promotion.DiscountKind(m.Kind),
		DiscountValue: m.DiscountValue,
		ProductIDs:    ids,
		Active:        m.Active,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
	}
}

// PromotionModelFromDomain creates a persistence model from a domain Promotion
func PromotionModelFromDomain(p *promotion.Promotion) *PromotionModel {
	m := &PromotionModel{
		Title:         p.Title,
		Kind:          string(p.Kind),
		DiscountValue: p.DiscountValue,
		ProductIDs:    p.ProductIDs,
		Active:        p.Active,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
