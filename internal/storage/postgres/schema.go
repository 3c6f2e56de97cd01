package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id                BIGSERIAL PRIMARY KEY,
    title             TEXT NOT NULL,
    description       TEXT NOT NULL,
    category          TEXT NOT NULL DEFAULT '',
    status            TEXT NOT NULL DEFAULT 'open',
    time_commitment   TEXT NOT NULL DEFAULT '',
    duration          TEXT NOT NULL DEFAULT '',
    location          TEXT NOT NULL DEFAULT '',
    image_url         TEXT NOT NULL DEFAULT '',
    volunteers_needed INT  NOT NULL DEFAULT 1,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS applications (
    id              BIGSERIAL PRIMARY KEY,
    project_id      BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    volunteer_name  TEXT NOT NULL,
    volunteer_email TEXT NOT NULL,
    volunteer_phone TEXT NOT NULL DEFAULT '',
    motivation      TEXT NOT NULL,
    status          TEXT NOT NULL DEFAULT 'pending',
    applied_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_applications_project_id ON applications (project_id);
CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications (applied_at);
`

// EnsureSchema creates the tables on startup when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
