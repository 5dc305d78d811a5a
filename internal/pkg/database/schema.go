package database

import (
	"context"
	"fmt"
)

// The unique constraints carry the uniqueness guarantees for employee_id,
// email, and the (employee_id, date) natural key. Their names are matched
// against pg error reports to tell duplicate causes apart, so they are
// declared explicitly rather than left to the default naming.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id TEXT PRIMARY KEY,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		CONSTRAINT employees_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id          UUID PRIMARY KEY,
		employee_id TEXT NOT NULL,
		date        DATE NOT NULL,
		status      TEXT NOT NULL,
		marked_at   TIMESTAMPTZ NOT NULL,
		CONSTRAINT attendance_employee_date_key UNIQUE (employee_id, date)
	)`,
}

// EnsureSchema creates the tables and unique constraints at startup.
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
