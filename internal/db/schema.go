package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema: таблицы, которые читает и пишет сервис. Идемпотентно.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS navigation_items (
		id            TEXT PRIMARY KEY,
		label         TEXT NOT NULL,
		path          TEXT NOT NULL CHECK (path LIKE '/%'),
		parent_id     TEXT NULL REFERENCES navigation_items(id) ON DELETE SET NULL,
		visible       BOOLEAN NOT NULL DEFAULT true,
		icon          TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS navigation_items_order_idx ON navigation_items (display_order, created_at, id)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id          TEXT PRIMARY KEY,
		key         TEXT NOT NULL UNIQUE,
		value       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS pages (
		id               TEXT PRIMARY KEY,
		slug             TEXT NOT NULL UNIQUE,
		title            TEXT NOT NULL,
		body             TEXT NULL,
		meta_description TEXT NULL,
		published        BOOLEAN NOT NULL DEFAULT false,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS redirects (
		id         TEXT PRIMARY KEY,
		from_path  TEXT NOT NULL CHECK (from_path LIKE '/%'),
		to_path    TEXT NOT NULL,
		permanent  BOOLEAN NOT NULL DEFAULT false,
		enabled    BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS redirects_from_idx ON redirects (from_path) WHERE enabled`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'editor',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema создаёт недостающие таблицы и индексы.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
