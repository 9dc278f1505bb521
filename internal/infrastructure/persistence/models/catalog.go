package models

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the products table
type ProductModel struct {
	BaseModel
	Name          string           `gorm:"type:varchar(200);not null"`
	Slug          string           `gorm:"type:varchar(200);index"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	CostPrice     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	StockQuantity *int
	OutOfStock    bool `gorm:"not null;default:false"`
	Published     bool `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Slug:          m.Slug,
		Price:         m.Price,
		CostPrice:     m.CostPrice,
		StockQuantity: m.StockQuantity,
		OutOfStock:    m.OutOfStock,
		Published:     m.Published,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Slug = p.Slug
	m.Price = p.Price
	m.CostPrice = p.CostPrice
	m.StockQuantity = p.StockQuantity
	m.OutOfStock = p.OutOfStock
	m.Published = p.Published
}

// ProductModelFromDomain creates a persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
