package database

import (
	"context"
	"fmt"
)

// The partial unique index is what makes the clock-in invariant hold under
// concurrent requests: at most one open record (clock_out IS NULL) may exist
// per employee per calendar day.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		position TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clock_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees (id),
		date DATE NOT NULL,
		clock_in TIMESTAMPTZ NOT NULL,
		clock_out TIMESTAMPTZ,
		hours_worked NUMERIC(6,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS clock_records_open_shift_uniq
		ON clock_records (employee_id, date)
		WHERE clock_out IS NULL`,
	`CREATE INDEX IF NOT EXISTS clock_records_employee_date_idx
		ON clock_records (employee_id, date)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
