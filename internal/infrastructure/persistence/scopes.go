package persistence

import (
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"gorm.io/gorm"
)

// createdWithin restricts column to the inclusive bounds of r; a nil range or open bound adds no condition
func createdWithin(column string, r *valueobject.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r == nil {
			return db
		}
		if start, ok := r.Start(); ok {
			db = db.Where(column+" >= ?", start)
		}
		if end, ok := r.End(); ok {
			db = db.Where(column+" <= ?", end)
		}
		return db
	}
}
