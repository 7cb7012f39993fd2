package storage

import (
	"context"
	"log/slog"
	"strings"
)

// Timestamps are stored as TEXT in timeLayout so both dialects scan them
// into plain strings.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id {{id}},
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidate_profiles (
		candidate_id BIGINT PRIMARY KEY REFERENCES candidates(id) ON DELETE CASCADE,
		name TEXT,
		email TEXT,
		phone TEXT,
		gender TEXT,
		nationality TEXT,
		address TEXT,
		summary TEXT,
		education TEXT,
		experience TEXT,
		linkedin TEXT,
		github TEXT,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidate_skills (
		id {{id}},
		candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		skill TEXT NOT NULL,
		added_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidate_skills_candidate ON candidate_skills(candidate_id)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id {{id}},
		title TEXT NOT NULL,
		skills TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cv_files (
		id {{id}},
		candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		filename TEXT NOT NULL,
		object_key TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size BIGINT NOT NULL,
		sha256 TEXT NOT NULL,
		uploaded_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cv_files_candidate ON cv_files(candidate_id)`,
	`CREATE TABLE IF NOT EXISTS parse_jobs (
		id {{id}},
		candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		status TEXT NOT NULL,
		error_message TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// EnsureSchema creates every table the service needs. It is idempotent.
func (db *DB) EnsureSchema(ctx context.Context) error {
	id := "BIGSERIAL PRIMARY KEY"
	if db.dialect == DialectSQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	for _, stmt := range schemaStatements {
		if _, err := db.connection.ExecContext(ctx, strings.ReplaceAll(stmt, "{{id}}", id)); err != nil {
			return wrap("ensure schema", err)
		}
	}
	slog.Debug("schema ready", "dialect", db.dialect)
	return nil
}
