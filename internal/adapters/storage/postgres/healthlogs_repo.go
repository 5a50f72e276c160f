package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-health-bot/internal/domain/observations"
)

type HealthLogsRepo struct {
	db *sql.DB
}

func NewHealthLogsRepo(db *sql.DB) *HealthLogsRepo {
	return &HealthLogsRepo{db: db}
}

func (r *HealthLogsRepo) Create(ctx context.Context, l observations.HealthLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_logs (
			id, pet_id, date, weight,
			food_type, mood, stool_info, appetite, water_intake,
			activity, temperature, breathing, symptoms, notes,
			recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		l.ID,
		l.PetID,
		l.Date,
		toNullFloat(l.Weight),
		l.FoodType,
		l.Mood,
		l.StoolInfo,
		l.Appetite,
		l.WaterIntake,
		l.Activity,
		l.Temperature,
		l.Breathing,
		l.Symptoms,
		l.Notes,
		l.RecordedAt,
	)
	return err
}

func (r *HealthLogsRepo) ListRecent(ctx context.Context, petID string, limit int) ([]observations.HealthLog, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := r.db.QueryContext(ctx, selectLogs+`
		WHERE pet_id = $1
		ORDER BY date DESC
		LIMIT $2
	`, petID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLogs(rows)
}

func (r *HealthLogsRepo) ListSince(ctx context.Context, petID string, since time.Time) ([]observations.HealthLog, error) {
	rows, err := r.db.QueryContext(ctx, selectLogs+`
		WHERE pet_id = $1 AND date >= $2
		ORDER BY date DESC
	`, petID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLogs(rows)
}

const selectLogs = `
	SELECT
		id, pet_id, date, weight,
		food_type, mood, stool_info, appetite, water_intake,
		activity, temperature, breathing, symptoms, notes,
		recorded_at
	FROM health_logs`

func collectLogs(rows *sql.Rows) ([]observations.HealthLog, error) {
	out := make([]observations.HealthLog, 0)
	for rows.Next() {
		var l observations.HealthLog
		var weight sql.NullFloat64
		if err := rows.Scan(
			&l.ID,
			&l.PetID,
			&l.Date,
			&weight,
			&l.FoodType,
			&l.Mood,
			&l.StoolInfo,
			&l.Appetite,
			&l.WaterIntake,
			&l.Activity,
			&l.Temperature,
			&l.Breathing,
			&l.Symptoms,
			&l.Notes,
			&l.RecordedAt,
		); err != nil {
			return nil, err
		}
		if weight.Valid {
			w := weight.Float64
			l.Weight = &w
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
