package promotion

import (
	"context"
	"time"
)

// Repository is the read port for promotions
type Repository interface {
	// FindActive returns promotions that are enabled and whose window contains now
	FindActive(ctx context.Context, now time.Time) ([]Promotion, error)
}
