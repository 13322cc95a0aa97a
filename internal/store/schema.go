package store

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL CHECK (role IN ('admin', 'faculty', 'student')),
	name          TEXT NOT NULL,
	department    TEXT,
	roll_number   TEXT,
	section       TEXT,
	approved      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS students (
	roll_number TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	department  TEXT NOT NULL,
	section     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance (
	id          BIGSERIAL PRIMARY KEY,
	date        TEXT NOT NULL,
	roll_number TEXT NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('present', 'absent')),
	department  TEXT NOT NULL,
	section     TEXT NOT NULL,
	marked_by   TEXT REFERENCES users(id) ON DELETE SET NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (date, roll_number)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date);
CREATE INDEX IF NOT EXISTS idx_attendance_roll ON attendance(roll_number);
CREATE INDEX IF NOT EXISTS idx_attendance_dept ON attendance(department);
`

// Migrate creates the schema when missing. Idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
