package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id             TEXT PRIMARY KEY,
		owner_id       INTEGER NOT NULL,
		name           TEXT NOT NULL,
		species        TEXT NOT NULL,
		breed          TEXT NOT NULL DEFAULT '',
		sex            TEXT NOT NULL DEFAULT 'unknown',
		age_years      INTEGER NOT NULL DEFAULT 0,
		age_months     INTEGER NOT NULL DEFAULT 0,
		weight         REAL,
		neutered       INTEGER NOT NULL DEFAULT 0,
		diseases       TEXT NOT NULL DEFAULT '',
		medications    TEXT NOT NULL DEFAULT '',
		vaccine_status TEXT NOT NULL DEFAULT '',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMP NOT NULL,
		updated_at     TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id)`,

	`CREATE TABLE IF NOT EXISTS health_logs (
		id           TEXT PRIMARY KEY,
		pet_id       TEXT NOT NULL REFERENCES pets (id),
		date         TIMESTAMP NOT NULL,
		weight       REAL,
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
		recorded_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_logs_pet_date ON health_logs (pet_id, date DESC)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		user_id           INTEGER PRIMARY KEY,
		premium           INTEGER NOT NULL DEFAULT 0,
		plan              TEXT NOT NULL DEFAULT 'free',
		trial             INTEGER NOT NULL DEFAULT 0,
		start_date        TIMESTAMP NOT NULL,
		end_date          TIMESTAMP,
		payment_reference TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMP NOT NULL,
		updated_at        TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS ai_usage (
		user_id INTEGER NOT NULL,
		day     TEXT NOT NULL,
		count   INTEGER NOT NULL DEFAULT 0,
		UNIQUE (user_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS analytics_events (
		id         TEXT PRIMARY KEY,
		user_id    INTEGER NOT NULL,
		username   TEXT NOT NULL DEFAULT '',
		kind       TEXT NOT NULL,
		action     TEXT NOT NULL,
		details    TEXT NOT NULL DEFAULT '{}',
		premium    INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
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
