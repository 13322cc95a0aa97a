package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"attendance/internal/apperr"
)

// Repository persists user accounts in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Returns apperr.Conflict when the username is taken.
func (r *Repository) Create(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, name, department, roll_number, section, approved)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, u.ID, u.Username, u.PasswordHash, u.Role, u.Name, u.Department, u.RollNumber, u.Section, u.Approved)
	if isUniqueViolation(err) {
		return apperr.Wrap(apperr.Conflict, "username already exists", err)
	}
	if err != nil {
		return apperr.Wrap(apperr.Store, "create user failed", err)
	}
	return nil
}

// GetByUsername returns a user or nil when the username is unknown.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, name, department, roll_number, section, approved, created_at
		FROM users WHERE username = $1
	`, username)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Name, &u.Department, &u.RollNumber, &u.Section, &u.Approved, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.Store, "lookup user failed", err)
	}
	return &u, nil
}

// PendingFaculty lists unapproved faculty accounts, newest first.
func (r *Repository) PendingFaculty(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, name, department, created_at
		FROM users
		WHERE role = 'faculty' AND approved = FALSE
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list pending faculty failed", err)
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Department, &u.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Store, "scan pending faculty failed", err)
		}
		u.Role = RoleFaculty
		users = append(users, u)
	}
	return users, rows.Err()
}

// Approve flips the approval flag for a faculty account.
func (r *Repository) Approve(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET approved = TRUE WHERE id = $1 AND role = 'faculty'
	`, id)
	if err != nil {
		return apperr.Wrap(apperr.Store, "approve faculty failed", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "faculty not found")
	}
	return nil
}

// Delete removes a faculty account.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM users WHERE id = $1 AND role = 'faculty'
	`, id)
	if err != nil {
		return apperr.Wrap(apperr.Store, "delete faculty failed", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "faculty not found")
	}
	return nil
}

// isUniqueViolation detects Postgres unique-constraint errors (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
