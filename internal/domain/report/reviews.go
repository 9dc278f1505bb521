package report

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// UnknownReviewer is shown when a review's author could not be resolved
const UnknownReviewer = "Unknown user"

// ReviewEntry is a review as listed in analytics
type ReviewEntry struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt string    `json:"created_at"`
}

// ReviewSummary is the rating overview for a product
type ReviewSummary struct {
	List    []ReviewEntry   `json:"list"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

// AggregateReviews filters reviews to dateRange and summarizes them.
// The list is newest first and the average is rounded to one decimal place.
func AggregateReviews(reviews []review.Review, dateRange *valueobject.DateRange) ReviewSummary {
	included := make([]review.Review, 0, len(reviews))
	sum := 0
	for _, r := range reviews {
		if !valueobject.InRange(dateRange, r.CreatedAt) {
			continue
		}
		included = append(included, r)
		sum += r.Rating
	}

	slices.SortStableFunc(included, func(a, b review.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	summary := ReviewSummary{
		List:    make([]ReviewEntry, 0, len(included)),
		Average: decimal.Zero,
		Count:   len(included),
	}
	if summary.Count > 0 {
		summary.Average = decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(summary.Count))).
			Round(1)
	}

	for _, r := range included {
		name := r.ReviewerName
		if name == "" {
			name = UnknownReviewer
		}
		summary.List = append(summary.List, ReviewEntry{
			ID:        r.ID,
			User:      name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return summary
}
