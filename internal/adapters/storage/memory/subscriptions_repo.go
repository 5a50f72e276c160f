package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pet-health-bot/internal/domain/subscriptions"
)

type subscriptionRepo struct {
	mu     sync.RWMutex
	byUser map[int64]subscriptions.Subscription
}

func NewSubscriptionRepo() subscriptions.Repository {
	return &subscriptionRepo{byUser: make(map[int64]subscriptions.Subscription)}
}

func (r *subscriptionRepo) Get(ctx context.Context, userID int64) (subscriptions.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	if !ok {
		return subscriptions.Subscription{}, subscriptions.ErrNotFound
	}
	return s, nil
}

func (r *subscriptionRepo) Upsert(ctx context.Context, s subscriptions.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.UserID == 0 {
		return errors.New("subscription user id required")
	}
	r.byUser[s.UserID] = s
	return nil
}

type usageRepo struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewUsageRepo() subscriptions.UsageRepository {
	return &usageRepo{counts: make(map[string]int)}
}

func (r *usageRepo) UsageCount(ctx context.Context, userID int64, day time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counts[usageKey(userID, day)], nil
}

func (r *usageRepo) IncrementUsage(ctx context.Context, userID int64, day time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counts[usageKey(userID, day)]++
	return nil
}

func usageKey(userID int64, day time.Time) string {
	return fmt.Sprintf("%d/%s", userID, day.UTC().Format("2006-01-02"))
}
