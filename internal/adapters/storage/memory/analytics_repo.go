package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-health-bot/internal/domain/analytics"
)

type analyticsRepo struct {
	mu     sync.RWMutex
	events []analytics.Event
}

func NewAnalyticsRepo() analytics.Repository {
	return &analyticsRepo{}
}

func (r *analyticsRepo) Create(ctx context.Context, e analytics.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	r.events = append(r.events, e)
	return nil
}

func (r *analyticsRepo) ListByDay(ctx context.Context, day time.Time) ([]analytics.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := day.UTC().Format("2006-01-02")
	out := make([]analytics.Event, 0)
	for _, e := range r.events {
		if e.CreatedAt.UTC().Format("2006-01-02") == want {
			out = append(out, e)
		}
	}
	return out, nil
}
