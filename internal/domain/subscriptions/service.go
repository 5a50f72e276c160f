package subscriptions

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned by repositories when no row exists. The
	// service treats it as "free plan", never as a failure.
	ErrNotFound = errors.New("subscription not found")
)

const (
	trialDays = 7

	freePetLimit    = 1
	premiumPetLimit = 10

	// freeDailyAIMessages is the free-tier chat quota per calendar day.
	freeDailyAIMessages = 3
)

type Service struct {
	repo  Repository
	usage UsageRepository
	now   func() time.Time
}

func NewService(repo Repository, usage UsageRepository) *Service {
	return &Service{
		repo:  repo,
		usage: usage,
		now:   time.Now,
	}
}

// Status resolves the user's current tier. Missing rows default to free and
// an expired premium/trial row is downgraded in place, matching what the
// user would be told (read-time expiry, no background job needed).
func (s *Service) Status(ctx context.Context, userID int64) (Subscription, error) {
	if userID == 0 {
		return Subscription{}, ErrInvalidInput
	}

	sub, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return s.freeSubscription(userID), nil
	}
	if err != nil {
		return Subscription{}, err
	}

	if sub.Premium && sub.Expired(s.now()) {
		down := s.freeSubscription(userID)
		down.CreatedAt = sub.CreatedAt
		if err := s.repo.Upsert(ctx, down); err != nil {
			return Subscription{}, err
		}
		return down, nil
	}
	return sub, nil
}

// StartTrial begins the 7-day premium trial. A user already on premium (or
// already trialing) cannot start another one.
func (s *Service) StartTrial(ctx context.Context, userID int64) (Subscription, error) {
	cur, err := s.Status(ctx, userID)
	if err != nil {
		return Subscription{}, err
	}
	if cur.Premium {
		return Subscription{}, ErrInvalidInput
	}

	now := s.now()
	end := now.AddDate(0, 0, trialDays)
	sub := Subscription{
		UserID:    userID,
		Premium:   true,
		Plan:      PlanTrial,
		Trial:     true,
		StartDate: now,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Upgrade switches the user to the paid premium plan for the given number
// of 30-day months.
func (s *Service) Upgrade(ctx context.Context, userID int64, paymentReference string, months int) (Subscription, error) {
	if userID == 0 || strings.TrimSpace(paymentReference) == "" {
		return Subscription{}, ErrInvalidInput
	}
	if months <= 0 {
		months = 1
	}

	now := s.now()
	end := now.AddDate(0, 0, 30*months)
	sub := Subscription{
		UserID:           userID,
		Premium:          true,
		Plan:             PlanPremium,
		StartDate:        now,
		EndDate:          &end,
		PaymentReference: strings.TrimSpace(paymentReference),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Upsert(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Blocked reports whether the feature is unavailable on the user's tier.
func (s *Service) Blocked(ctx context.Context, userID int64, f Feature) (bool, error) {
	sub, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	if sub.Premium {
		return false, nil
	}
	switch f {
	case FeatureMultiplePets, FeatureUnlimitedAIChat, FeatureAdvancedAnalysis,
		FeatureCustomReminders, FeatureExportReports:
		return true, nil
	default:
		return false, nil
	}
}

// PetLimit satisfies pets.TierLimiter. Errors fall back to the free limit
// rather than refusing registration outright.
func (s *Service) PetLimit(ctx context.Context, userID int64) int {
	sub, err := s.Status(ctx, userID)
	if err != nil || !sub.Premium {
		return freePetLimit
	}
	return premiumPetLimit
}

// AllowAIMessage checks the daily chat quota. Premium users are never
// limited; free users get freeDailyAIMessages per calendar day.
func (s *Service) AllowAIMessage(ctx context.Context, userID int64) (bool, error) {
	sub, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	if sub.Premium {
		return true, nil
	}
	n, err := s.usage.UsageCount(ctx, userID, s.now())
	if err != nil {
		return false, err
	}
	return n < freeDailyAIMessages, nil
}

// RecordAIMessage counts one chat message against today's quota. Premium
// usage is counted too; it feeds the admin analytics even though no limit
// applies.
func (s *Service) RecordAIMessage(ctx context.Context, userID int64) error {
	return s.usage.IncrementUsage(ctx, userID, s.now())
}

func (s *Service) freeSubscription(userID int64) Subscription {
	now := s.now()
	return Subscription{
		UserID:    userID,
		Plan:      PlanFree,
		StartDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
