package subscriptions

import (
	"context"
	"time"
)

type Repository interface {
	Get(ctx context.Context, userID int64) (Subscription, error)
	Upsert(ctx context.Context, s Subscription) error
}

// UsageRepository tracks per-day AI message counts for quota enforcement.
// Day is the user-facing calendar date (YYYY-MM-DD).
type UsageRepository interface {
	UsageCount(ctx context.Context, userID int64, day time.Time) (int, error)
	IncrementUsage(ctx context.Context, userID int64, day time.Time) error
}
