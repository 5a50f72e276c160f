package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const topActionsLimit = 5

// Service records usage events and builds daily summaries. Recording is
// best-effort from the callers' point of view; a broken analytics store
// must never fail a user-facing operation, so Record logs and swallows
// repository errors.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record appends one usage event.
func (s *Service) Record(ctx context.Context, e Event) {
	e.Action = strings.TrimSpace(e.Action)
	if e.UserID == 0 || e.Kind == "" || e.Action == "" {
		return
	}
	e.ID = uuid.NewString()
	e.CreatedAt = s.now()
	if err := s.repo.Create(ctx, e); err != nil {
		log.Warn().Err(err).Str("action", e.Action).Msg("analytics event dropped")
	}
}

// DailySummary aggregates the events of one calendar day. A zero day
// means today.
func (s *Service) DailySummary(ctx context.Context, day time.Time) (Summary, error) {
	if day.IsZero() {
		day = s.now()
	}
	day = day.UTC()

	events, err := s.repo.ListByDay(ctx, day)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Date:   day.Format("2006-01-02"),
		ByKind: map[string]int{},
	}
	users := map[int64]struct{}{}
	premiumUsers := map[int64]struct{}{}
	actions := map[string]int{}

	for _, e := range events {
		sum.TotalEvents++
		sum.ByKind[string(e.Kind)]++
		users[e.UserID] = struct{}{}
		actions[e.Action]++

		switch e.Kind {
		case KindAIChat:
			sum.AIChats++
			if e.Premium {
				premiumUsers[e.UserID] = struct{}{}
			}
		case KindPetAction:
			sum.PetActions++
		case KindHealthAction:
			sum.HealthActions++
		case KindPremiumAction:
			sum.PremiumActions++
			if e.Action == "upgrade_to_premium" || e.Action == "start_trial" {
				premiumUsers[e.UserID] = struct{}{}
			}
		}
	}

	sum.UniqueUsers = len(users)
	sum.PremiumUsers = len(premiumUsers)
	sum.TopActions = topActions(actions, topActionsLimit)
	return sum, nil
}

func topActions(counts map[string]int, limit int) []ActionCount {
	out := make([]ActionCount, 0, len(counts))
	for action, n := range counts {
		out = append(out, ActionCount{Action: action, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Action < out[j].Action
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
