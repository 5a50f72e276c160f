package subscriptions

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	byUser map[int64]Subscription
}

func newTestRepo() *testRepo {
	return &testRepo{byUser: map[int64]Subscription{}}
}

func (r *testRepo) Get(ctx context.Context, userID int64) (Subscription, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return Subscription{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) Upsert(ctx context.Context, s Subscription) error {
	if s.UserID == 0 {
		return errors.New("repo: user id required")
	}
	r.byUser[s.UserID] = s
	return nil
}

type testUsage struct {
	counts map[string]int
}

func newTestUsage() *testUsage {
	return &testUsage{counts: map[string]int{}}
}

func usageKey(userID int64, day time.Time) string {
	return day.Format("2006-01-02") + "/" + strconv.FormatInt(userID, 10)
}

func (r *testUsage) UsageCount(ctx context.Context, userID int64, day time.Time) (int, error) {
	return r.counts[usageKey(userID, day)], nil
}

func (r *testUsage) IncrementUsage(ctx context.Context, userID int64, day time.Time) error {
	r.counts[usageKey(userID, day)]++
	return nil
}

func newTestService(now time.Time) (*Service, *testRepo, *testUsage) {
	repo := newTestRepo()
	usage := newTestUsage()
	svc := NewService(repo, usage)
	svc.now = func() time.Time { return now }
	return svc, repo, usage
}

// -------------------------
// Tests
// -------------------------

func TestService_Status_DefaultsToFree(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	sub, err := svc.Status(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Premium || sub.Plan != PlanFree {
		t.Fatalf("expected free default, got %+v", sub)
	}
}

func TestService_Status_ExpiryDowngrades(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)

	end := now.Add(-time.Hour)
	repo.byUser[42] = Subscription{
		UserID:  42,
		Premium: true,
		Plan:    PlanPremium,
		EndDate: &end,
	}

	sub, err := svc.Status(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Premium || sub.Plan != PlanFree {
		t.Fatalf("expected downgrade to free, got %+v", sub)
	}
	if stored := repo.byUser[42]; stored.Premium {
		t.Fatalf("downgrade must be persisted, got %+v", stored)
	}
}

func TestService_StartTrial(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	sub, err := svc.StartTrial(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sub.Premium || !sub.Trial || sub.Plan != PlanTrial {
		t.Fatalf("unexpected trial subscription: %+v", sub)
	}
	if sub.EndDate == nil || !sub.EndDate.Equal(now.AddDate(0, 0, 7)) {
		t.Fatalf("expected 7-day trial end, got %v", sub.EndDate)
	}

	// A second trial while premium is rejected.
	if _, err := svc.StartTrial(context.Background(), 42); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Upgrade(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	sub, err := svc.Upgrade(context.Background(), 42, "pay-123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sub.Premium || sub.Plan != PlanPremium || sub.Trial {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
	if sub.EndDate == nil || !sub.EndDate.Equal(now.AddDate(0, 0, 60)) {
		t.Fatalf("expected 60-day window, got %v", sub.EndDate)
	}

	if _, err := svc.Upgrade(context.Background(), 42, "  ", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty payment reference, got %v", err)
	}
}

func TestService_Blocked(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	blocked, err := svc.Blocked(context.Background(), 42, FeatureAdvancedAnalysis)
	if err != nil || !blocked {
		t.Fatalf("free user must be blocked, got %v err=%v", blocked, err)
	}

	if _, err := svc.Upgrade(context.Background(), 42, "pay-1", 1); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	blocked, err = svc.Blocked(context.Background(), 42, FeatureAdvancedAnalysis)
	if err != nil || blocked {
		t.Fatalf("premium user must not be blocked, got %v err=%v", blocked, err)
	}
}

func TestService_PetLimit(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	if got := svc.PetLimit(context.Background(), 42); got != 1 {
		t.Fatalf("free limit: expected 1, got %d", got)
	}
	if _, err := svc.Upgrade(context.Background(), 42, "pay-1", 1); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if got := svc.PetLimit(context.Background(), 42); got != 10 {
		t.Fatalf("premium limit: expected 10, got %d", got)
	}
}

func TestService_AIQuota(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := svc.AllowAIMessage(ctx, 42)
		if err != nil || !ok {
			t.Fatalf("message %d should be allowed, got %v err=%v", i+1, ok, err)
		}
		if err := svc.RecordAIMessage(ctx, 42); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	ok, err := svc.AllowAIMessage(ctx, 42)
	if err != nil || ok {
		t.Fatalf("fourth daily message must be blocked, got %v err=%v", ok, err)
	}

	// Premium lifts the cap.
	if _, err := svc.Upgrade(ctx, 42, "pay-1", 1); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	ok, err = svc.AllowAIMessage(ctx, 42)
	if err != nil || !ok {
		t.Fatalf("premium user must not be limited, got %v err=%v", ok, err)
	}
}
