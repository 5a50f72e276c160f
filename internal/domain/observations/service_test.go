package observations

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	created []HealthLog
	since   time.Time
}

func (r *testRepo) Create(ctx context.Context, l HealthLog) error {
	r.created = append(r.created, l)
	return nil
}

func (r *testRepo) ListRecent(ctx context.Context, petID string, limit int) ([]HealthLog, error) {
	out := make([]HealthLog, 0, limit)
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		if r.created[i].PetID == petID {
			out = append(out, r.created[i])
		}
	}
	return out, nil
}

func (r *testRepo) ListSince(ctx context.Context, petID string, since time.Time) ([]HealthLog, error) {
	r.since = since
	return nil, nil
}

func TestService_Log(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	w := 5.5
	l, err := svc.Log(context.Background(), "pet-1", LogInput{
		Weight:   &w,
		Mood:     " happy_energetic ",
		Symptoms: "none",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID == "" || l.PetID != "pet-1" || l.Mood != "happy_energetic" {
		t.Fatalf("unexpected log: %+v", l)
	}
	if !l.Date.Equal(now) || !l.RecordedAt.Equal(now) {
		t.Fatalf("zero date must default to now: %+v", l)
	}
}

func TestService_Log_Validation(t *testing.T) {
	svc := NewService(&testRepo{})

	if _, err := svc.Log(context.Background(), "  ", LogInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty pet id, got %v", err)
	}
	bad := -1.0
	if _, err := svc.Log(context.Background(), "pet-1", LogInput{Weight: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative weight, got %v", err)
	}
}

func TestService_Recent_Normalizes(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.Log(context.Background(), "pet-1", LogInput{Mood: "tired_lethargic", StoolInfo: "bloody"}); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	obs, err := svc.Recent(context.Background(), "pet-1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 1 || obs[0].Mood != MoodTiredLethargic || obs[0].Stool != StoolBloody {
		t.Fatalf("normalization missing: %+v", obs)
	}
}

func TestService_Window_Cutoff(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if _, err := svc.Window(context.Background(), "pet-1", 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.AddDate(0, 0, -30); !repo.since.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", repo.since, want)
	}

	// days <= 0 falls back to the 30-day default.
	if _, err := svc.Window(context.Background(), "pet-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.AddDate(0, 0, -30); !repo.since.Equal(want) {
		t.Fatalf("default cutoff = %v, want %v", repo.since, want)
	}
}
