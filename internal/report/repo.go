package report

import (
	"context"
	"database/sql"
	"fmt"

	"attendance/internal/apperr"
)

// Repository reads aggregates from Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// DailyCounts groups ledger rows by department for one date.
func (r *Repository) DailyCounts(ctx context.Context, date string) ([]DeptCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT department,
		       COUNT(*) AS total,
		       SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END) AS present,
		       SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END) AS absent
		FROM attendance
		WHERE date = $1
		GROUP BY department
		ORDER BY department
	`, date)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "daily stats failed", err)
	}
	return scanCounts(rows)
}

// MonthlyCounts groups ledger rows by department for one calendar month.
// Dates are stored as YYYY-MM-DD text, so the month is a prefix match.
func (r *Repository) MonthlyCounts(ctx context.Context, year, month int) ([]DeptCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT department,
		       COUNT(*) AS total,
		       SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END) AS present,
		       SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END) AS absent
		FROM attendance
		WHERE date LIKE $1
		GROUP BY department
		ORDER BY department
	`, monthPattern(year, month))
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "monthly stats failed", err)
	}
	return scanCounts(rows)
}

// History lists ledger rows matching the filter, newest date first.
func (r *Repository) History(ctx context.Context, f HistoryFilter) ([]HistoryRecord, error) {
	query := `SELECT date, roll_number, status, department, section FROM attendance`
	args := []any{}
	clauses := []string{}
	add := func(clause, val string) {
		args = append(args, val)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if f.Department != "" {
		add("department = $%d", f.Department)
	}
	if f.Section != "" {
		add("section = $%d", f.Section)
	}
	if f.StartDate != "" {
		add("date >= $%d", f.StartDate)
	}
	if f.EndDate != "" {
		add("date <= $%d", f.EndDate)
	}
	if len(clauses) > 0 {
		query += " WHERE " + clauses[0]
		for _, c := range clauses[1:] {
			query += " AND " + c
		}
	}
	query += " ORDER BY date DESC, roll_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "attendance history failed", err)
	}
	defer rows.Close()
	var records []HistoryRecord
	for rows.Next() {
		var rec HistoryRecord
		if err := rows.Scan(&rec.Date, &rec.RollNumber, &rec.Status, &rec.Department, &rec.Section); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan history failed", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// StudentRecords lists one student's ledger rows, newest date first.
func (r *Repository) StudentRecords(ctx context.Context, rollNumber string) ([]StudentRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, status, department, section, created_at
		FROM attendance
		WHERE roll_number = $1
		ORDER BY date DESC
	`, rollNumber)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "student history failed", err)
	}
	defer rows.Close()
	var records []StudentRecord
	for rows.Next() {
		var rec StudentRecord
		if err := rows.Scan(&rec.Date, &rec.Status, &rec.Department, &rec.Section, &rec.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan student history failed", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// StudentMonthlyCounts tallies one student's rows for a calendar month.
func (r *Repository) StudentMonthlyCounts(ctx context.Context, rollNumber string, year, month int) (present, total int, err error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) AS total,
		       SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END) AS present
		FROM attendance
		WHERE roll_number = $1 AND date LIKE $2
	`, rollNumber, monthPattern(year, month))
	var presentSum sql.NullInt64
	if err := row.Scan(&total, &presentSum); err != nil {
		return 0, 0, apperr.Wrap(apperr.Store, "monthly average failed", err)
	}
	return int(presentSum.Int64), total, nil
}

// Log returns the 100 most recent distinct marking events, newest first.
func (r *Repository) Log(ctx context.Context) ([]LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.name AS marked_by,
		       a.department,
		       a.section,
		       a.date,
		       to_char(a.created_at, 'YYYY-MM-DD HH24:MI') AS marked_at
		FROM attendance a
		JOIN users u ON a.marked_by = u.id
		WHERE a.marked_by IS NOT NULL
		GROUP BY u.name, a.department, a.section, a.date, to_char(a.created_at, 'YYYY-MM-DD HH24:MI')
		ORDER BY marked_at DESC
		LIMIT 100
	`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "attendance log failed", err)
	}
	defer rows.Close()
	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.MarkedBy, &e.Department, &e.Section, &e.Date, &e.MarkedAt); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan attendance log failed", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Section lists all rows for one (department, section, date) triple.
func (r *Repository) Section(ctx context.Context, department, section, date string) ([]SectionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.roll_number, a.status, u.name AS marked_by, a.created_at AS marked_at
		FROM attendance a
		LEFT JOIN users u ON a.marked_by = u.id
		WHERE a.department = $1 AND a.section = $2 AND a.date = $3
		ORDER BY a.roll_number
	`, department, section, date)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "section attendance failed", err)
	}
	defer rows.Close()
	var records []SectionRecord
	for rows.Next() {
		var rec SectionRecord
		if err := rows.Scan(&rec.RollNumber, &rec.Status, &rec.MarkedBy, &rec.MarkedAt); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan section attendance failed", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanCounts(rows *sql.Rows) ([]DeptCount, error) {
	defer rows.Close()
	var counts []DeptCount
	for rows.Next() {
		var c DeptCount
		if err := rows.Scan(&c.Department, &c.Total, &c.Present, &c.Absent); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan stats failed", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func monthPattern(year, month int) string {
	return fmt.Sprintf("%04d-%02d-%%", year, month)
}
