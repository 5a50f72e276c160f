package observations

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l HealthLog) error

	// ListRecent returns up to limit logs for the pet, most recent first.
	ListRecent(ctx context.Context, petID string, limit int) ([]HealthLog, error)

	// ListSince returns all logs for the pet dated on or after the cutoff,
	// most recent first. Used for the correlation window.
	ListSince(ctx context.Context, petID string, since time.Time) ([]HealthLog, error)
}
