package ingest

import (
	"context"
	"database/sql"

	"attendance/internal/apperr"
)

// Repository writes ledger rows to Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes one attendance row. Resubmitting the same (date, roll_number)
// overwrites the earlier row instead of accumulating duplicates.
func (r *Repository) Upsert(ctx context.Context, rec Record) error {
	var markedBy *string
	if rec.MarkedBy != "" {
		markedBy = &rec.MarkedBy
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (date, roll_number, status, department, section, marked_by)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (date, roll_number) DO UPDATE SET
			status     = EXCLUDED.status,
			department = EXCLUDED.department,
			section    = EXCLUDED.section,
			marked_by  = EXCLUDED.marked_by,
			created_at = NOW()
	`, rec.Date, rec.RollNumber, rec.Status, rec.Department, rec.Section, markedBy)
	if err != nil {
		return apperr.Wrap(apperr.Store, "attendance write failed", err)
	}
	return nil
}
