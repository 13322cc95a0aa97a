package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"attendance/internal/apperr"
	"attendance/internal/auth"
)

// Repository persists roster entries in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithUser inserts the login and the roster row for one student inside
// a single transaction, so a failure leaves neither behind.
func (r *Repository) CreateWithUser(ctx context.Context, st Student, u auth.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Wrap(apperr.Store, "begin import failed", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, name, department, roll_number, section, approved)
		VALUES ($1,$2,$3,'student',$4,$5,$6,$7,TRUE)
	`, u.ID, u.Username, u.PasswordHash, u.Name, st.Department, st.RollNumber, st.Section); err != nil {
		return classify(err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO students (roll_number, name, department, section)
		VALUES ($1,$2,$3,$4)
	`, st.RollNumber, st.Name, st.Department, st.Section); err != nil {
		return classify(err)
	}
	if err := tx.Commit(); err != nil {
		return apperr.Wrap(apperr.Store, "commit import failed", err)
	}
	return nil
}

// Get returns a roster entry or nil when the roll number is unknown.
func (r *Repository) Get(ctx context.Context, rollNumber string) (*Student, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT roll_number, name, department, section, created_at
		FROM students WHERE roll_number = $1
	`, rollNumber)
	var st Student
	if err := row.Scan(&st.RollNumber, &st.Name, &st.Department, &st.Section, &st.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.Store, "lookup student failed", err)
	}
	return &st, nil
}

// List returns roster entries, optionally filtered, ordered by roll number.
func (r *Repository) List(ctx context.Context, department, section string) ([]Student, error) {
	query, args := listQuery(department, section)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list students failed", err)
	}
	defer rows.Close()
	var students []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.RollNumber, &st.Name, &st.Department, &st.Section, &st.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan student failed", err)
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func listQuery(department, section string) (string, []any) {
	query := `SELECT roll_number, name, department, section, created_at FROM students`
	args := []any{}
	clauses := []string{}
	add := func(clause, val string) {
		args = append(args, val)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if department != "" {
		add("department = $%d", department)
	}
	if section != "" {
		add("section = $%d", section)
	}
	if len(clauses) > 0 {
		query += " WHERE " + clauses[0]
		for _, c := range clauses[1:] {
			query += " AND " + c
		}
	}
	return query + " ORDER BY roll_number", args
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.Wrap(apperr.Conflict, "student already exists", err)
	}
	return apperr.Wrap(apperr.Store, "import write failed", err)
}
