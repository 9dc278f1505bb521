package persistence

import (
	"testing"
	"time"

	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ProductModel{},
		&models.PromotionModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.UserModel{},
		&models.ReviewModel{},
		&models.ExpenseModel{},
	)
	require.NoError(t, err)
	return db
}

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
