package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-health-bot/internal/domain/subscriptions"
)

type SubscriptionsRepo struct {
	db *sql.DB
}

func NewSubscriptionsRepo(db *sql.DB) *SubscriptionsRepo {
	return &SubscriptionsRepo{db: db}
}

func (r *SubscriptionsRepo) Get(ctx context.Context, userID int64) (subscriptions.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			user_id, premium, plan, trial,
			start_date, end_date, payment_reference,
			created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`, userID)

	var s subscriptions.Subscription
	var end sql.NullTime
	if err := row.Scan(
		&s.UserID,
		&s.Premium,
		&s.Plan,
		&s.Trial,
		&s.StartDate,
		&end,
		&s.PaymentReference,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return subscriptions.Subscription{}, subscriptions.ErrNotFound
		}
		return subscriptions.Subscription{}, err
	}
	if end.Valid {
		t := end.Time
		s.EndDate = &t
	}
	return s, nil
}

func (r *SubscriptionsRepo) Upsert(ctx context.Context, s subscriptions.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (
			user_id, premium, plan, trial,
			start_date, end_date, payment_reference,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (user_id) DO UPDATE SET
			premium = EXCLUDED.premium,
			plan = EXCLUDED.plan,
			trial = EXCLUDED.trial,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			payment_reference = EXCLUDED.payment_reference,
			updated_at = EXCLUDED.updated_at
	`,
		s.UserID,
		s.Premium,
		s.Plan,
		s.Trial,
		s.StartDate,
		toNullTime(s.EndDate),
		s.PaymentReference,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

type UsageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) *UsageRepo {
	return &UsageRepo{db: db}
}

func (r *UsageRepo) UsageCount(ctx context.Context, userID int64, day time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count FROM ai_usage WHERE user_id = $1 AND day = $2`,
		userID, dayKey(day),
	).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

func (r *UsageRepo) IncrementUsage(ctx context.Context, userID int64, day time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ai_usage (user_id, day, count) VALUES ($1,$2,1)
		ON CONFLICT (user_id, day) DO UPDATE SET count = ai_usage.count + 1
	`, userID, dayKey(day))
	return err
}

func dayKey(day time.Time) string {
	return day.UTC().Format("2006-01-02")
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
