package analytics

import (
	"context"
	"time"
)

// Repository persists usage events. ListByDay returns every event whose
// CreatedAt falls on the given calendar day (UTC), oldest first.
type Repository interface {
	Create(ctx context.Context, e Event) error
	ListByDay(ctx context.Context, day time.Time) ([]Event, error)
}
