package observations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type LogInput struct {
	Date        time.Time
	Weight      *float64
	FoodType    string
	Mood        string
	StoolInfo   string
	Appetite    string
	WaterIntake string
	Activity    string
	Temperature string
	Breathing   string
	Symptoms    string
	Notes       string
}

// Log records one daily health entry for a pet. Empty categorical fields are
// allowed (they normalize to unknown later); a zero date defaults to today.
func (s *Service) Log(ctx context.Context, petID string, in LogInput) (HealthLog, error) {
	if strings.TrimSpace(petID) == "" {
		return HealthLog{}, ErrInvalidInput
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return HealthLog{}, ErrInvalidInput
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	l := HealthLog{
		ID:          uuid.NewString(),
		PetID:       petID,
		Date:        date,
		Weight:      in.Weight,
		FoodType:    strings.TrimSpace(in.FoodType),
		Mood:        strings.TrimSpace(in.Mood),
		StoolInfo:   strings.TrimSpace(in.StoolInfo),
		Appetite:    strings.TrimSpace(in.Appetite),
		WaterIntake: strings.TrimSpace(in.WaterIntake),
		Activity:    strings.TrimSpace(in.Activity),
		Temperature: strings.TrimSpace(in.Temperature),
		Breathing:   strings.TrimSpace(in.Breathing),
		Symptoms:    strings.TrimSpace(in.Symptoms),
		Notes:       strings.TrimSpace(in.Notes),
		RecordedAt:  now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return HealthLog{}, err
	}
	return l, nil
}

// Recent returns normalized observations for the pet, most recent first.
func (s *Service) Recent(ctx context.Context, petID string, limit int) ([]Observation, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	logs, err := s.repo.ListRecent(ctx, petID, limit)
	if err != nil {
		return nil, err
	}
	return Normalize(logs), nil
}

// RecentLogs returns raw logs for display (history view).
func (s *Service) RecentLogs(ctx context.Context, petID string, limit int) ([]HealthLog, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, petID, limit)
}

// Window returns the raw logs inside the trailing correlation window.
func (s *Service) Window(ctx context.Context, petID string, days int) ([]HealthLog, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if days <= 0 {
		days = 30
	}
	since := s.now().AddDate(0, 0, -days)
	return s.repo.ListSince(ctx, petID, since)
}
