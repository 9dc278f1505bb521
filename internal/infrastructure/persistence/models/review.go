package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/review"
)

// UserModel is the slice of the users table needed to name reviewers
type UserModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name *string   `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ReviewModel is the persistence model for the reviews table
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Rating    int        `gorm:"not null"`
	Comment   *string    `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
// ReviewerName is empty when the user is missing or unnamed.
func (m *ReviewModel) ToDomain() review.Review {
	r := review.Review{
		ID:        m.ID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		r.ReviewerName = stringOrEmpty(m.User.Name)
	}
	return r
}
