package config

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const listingsSchema = `
CREATE TABLE IF NOT EXISTS listings (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	url        TEXT NOT NULL DEFAULT '',
	price      TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	latitude   DOUBLE PRECISION,
	longitude  DOUBLE PRECISION,
	area       TEXT NOT NULL DEFAULT '',
	area_found BOOLEAN NOT NULL DEFAULT FALSE,
	near_bart  BOOLEAN NOT NULL DEFAULT FALSE,
	bart       TEXT NOT NULL DEFAULT '',
	bart_dist  DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS listings_created_at_idx ON listings (created_at DESC);`

func NewPostgres(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

func MigratePostgres(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, listingsSchema); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}
