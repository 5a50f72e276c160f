package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-health-bot/internal/domain/observations"
)

type healthLogRepo struct {
	mu    sync.RWMutex
	byPet map[string][]observations.HealthLog
}

func NewHealthLogRepo() observations.Repository {
	return &healthLogRepo{byPet: make(map[string][]observations.HealthLog)}
}

func (r *healthLogRepo) Create(ctx context.Context, l observations.HealthLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("health log id required")
	}
	if strings.TrimSpace(l.PetID) == "" {
		return errors.New("health log pet id required")
	}
	r.byPet[l.PetID] = append(r.byPet[l.PetID], l)
	return nil
}

func (r *healthLogRepo) ListRecent(ctx context.Context, petID string, limit int) ([]observations.HealthLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := sortedDesc(r.byPet[petID])
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *healthLogRepo) ListSince(ctx context.Context, petID string, since time.Time) ([]observations.HealthLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := sortedDesc(r.byPet[petID])
	out := make([]observations.HealthLog, 0, len(all))
	for _, l := range all {
		if !l.Date.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

func sortedDesc(logs []observations.HealthLog) []observations.HealthLog {
	out := make([]observations.HealthLog, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
