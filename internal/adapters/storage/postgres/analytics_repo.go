package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"pet-health-bot/internal/domain/analytics"
)

type AnalyticsRepo struct {
	db *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func (r *AnalyticsRepo) Create(ctx context.Context, e analytics.Event) error {
	details, err := encodeDetails(e.Details)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analytics_events (
			id, user_id, username, kind, action, details, premium, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.UserID,
		e.Username,
		e.Kind,
		e.Action,
		details,
		e.Premium,
		e.CreatedAt,
	)
	return err
}

func (r *AnalyticsRepo) ListByDay(ctx context.Context, day time.Time) ([]analytics.Event, error) {
	start := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, username, kind, action, details, premium, created_at
		FROM analytics_events
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analytics.Event, 0)
	for rows.Next() {
		var e analytics.Event
		var details string
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Username,
			&e.Kind,
			&e.Action,
			&details,
			&e.Premium,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := decodeDetails(details, &e.Details); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func encodeDetails(d map[string]string) (string, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeDetails(raw string, into *map[string]string) error {
	if raw == "" || raw == "{}" {
		return nil
	}
	return json.Unmarshal([]byte(raw), into)
}
