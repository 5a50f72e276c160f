package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id             TEXT PRIMARY KEY,
		owner_id       BIGINT NOT NULL,
		name           TEXT NOT NULL,
		species        TEXT NOT NULL,
		breed          TEXT NOT NULL DEFAULT '',
		sex            TEXT NOT NULL DEFAULT 'unknown',
		age_years      INT NOT NULL DEFAULT 0,
		age_months     INT NOT NULL DEFAULT 0,
		weight         DOUBLE PRECISION,
		neutered       BOOLEAN NOT NULL DEFAULT FALSE,
		diseases       TEXT NOT NULL DEFAULT '',
		medications    TEXT NOT NULL DEFAULT '',
		vaccine_status TEXT NOT NULL DEFAULT '',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id)`,

	`CREATE TABLE IF NOT EXISTS health_logs (
		id           TEXT PRIMARY KEY,
		pet_id       TEXT NOT NULL REFERENCES pets (id),
		date         TIMESTAMPTZ NOT NULL,
		weight       DOUBLE PRECISION,
		food_type    TEXT NOT NULL DEFAULT '',
		mood         TEXT NOT NULL DEFAULT '',
		stool_info   TEXT NOT NULL DEFAULT '',
		appetite     TEXT NOT NULL DEFAULT '',
		water_intake TEXT NOT NULL DEFAULT '',
		activity     TEXT NOT NULL DEFAULT '',
		temperature  TEXT NOT NULL DEFAULT '',
		breathing    TEXT NOT NULL DEFAULT '',
		symptoms     TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		recorded_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_logs_pet_date ON health_logs (pet_id, date DESC)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		user_id           BIGINT PRIMARY KEY,
		premium           BOOLEAN NOT NULL DEFAULT FALSE,
		plan              TEXT NOT NULL DEFAULT 'free',
		trial             BOOLEAN NOT NULL DEFAULT FALSE,
		start_date        TIMESTAMPTZ NOT NULL,
		end_date          TIMESTAMPTZ,
		payment_reference TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS ai_usage (
		user_id BIGINT NOT NULL,
		day     TEXT NOT NULL,
		count   INT NOT NULL DEFAULT 0,
		UNIQUE (user_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS analytics_events (
		id         TEXT PRIMARY KEY,
		user_id    BIGINT NOT NULL,
		username   TEXT NOT NULL DEFAULT '',
		kind       TEXT NOT NULL,
		action     TEXT NOT NULL,
		details    JSONB NOT NULL DEFAULT '{}',
		premium    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_events_created ON analytics_events (created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
