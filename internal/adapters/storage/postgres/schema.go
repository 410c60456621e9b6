package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_pets (
		seq     BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		pet_id  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS user_pets_user_id_idx ON user_pets (user_id)`,
	`CREATE TABLE IF NOT EXISTS missing_pets (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		age         TEXT NOT NULL DEFAULT '',
		breed       TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		gender      TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		latitude    DOUBLE PRECISION NOT NULL,
		longitude   DOUBLE PRECISION NOT NULL,
		image       TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		status      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS missing_pets_user_id_idx ON missing_pets (user_id)`,
	`CREATE TABLE IF NOT EXISTS found_pets (
		id         TEXT PRIMARY KEY,
		latitude   DOUBLE PRECISION NOT NULL,
		longitude  DOUBLE PRECISION NOT NULL,
		date       TIMESTAMPTZ NOT NULL,
		shelter    TEXT NOT NULL,
		picture    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		status     TEXT NOT NULL,
		claimed_by TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS found_pets_status_idx ON found_pets (status)`,
	`CREATE TABLE IF NOT EXISTS shelters (
		id      TEXT PRIMARY KEY,
		name    TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone   TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS shelters_name_idx ON shelters (name)`,
	`CREATE TABLE IF NOT EXISTS pet_events (
		seq         BIGSERIAL PRIMARY KEY,
		id          TEXT NOT NULL UNIQUE,
		pet_id      TEXT NOT NULL,
		pet_kind    TEXT NOT NULL,
		type        TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL,
		actor_type  TEXT NOT NULL,
		actor_id    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS pet_events_pet_id_idx ON pet_events (pet_id, occurred_at)`,
}

// Migrate crea el esquema si no existe. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return nil
}
