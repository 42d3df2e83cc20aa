package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Run once at startup. The UNIQUE (project_id, position) constraint backs
// the section ordering invariant; ON DELETE CASCADE implements the
// project -> sections -> refinements/feedback ownership cascade.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			title TEXT NOT NULL,
			kind TEXT NOT NULL,
			topic TEXT NOT NULL,
			structure JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Sections + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			position INTEGER NOT NULL,
			content TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (project_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Refinements + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			section_id UUID NOT NULL REFERENCES ` + tables.Sections + `(id) ON DELETE CASCADE,
			prompt TEXT NOT NULL,
			old_content TEXT NOT NULL,
			new_content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Feedback + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			section_id UUID NOT NULL REFERENCES ` + tables.Sections + `(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			comment TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Projects + `_user ON ` + tables.Projects + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Sections + `_project ON ` + tables.Sections + `(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Refinements + `_section ON ` + tables.Refinements + `(section_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Feedback + `_section ON ` + tables.Feedback + `(section_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
