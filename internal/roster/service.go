package roster

import (
	"context"

	"github.com/google/uuid"

	"attendance/internal/apperr"
	"attendance/internal/auth"
)

// Store is the roster surface the service needs.
type Store interface {
	CreateWithUser(ctx context.Context, st Student, u auth.User) error
	Get(ctx context.Context, rollNumber string) (*Student, error)
	List(ctx context.Context, department, section string) ([]Student, error)
}

// Service imports and reads roster entries.
type Service struct {
	store      Store
	bcryptCost int
}

// NewService creates a service backed by a roster store.
func NewService(store Store, bcryptCost int) *Service {
	return &Service{store: store, bcryptCost: bcryptCost}
}

// Import creates a pre-approved student login plus a roster row for each
// record. Records are independent: a missing field, hashing failure, or store
// rejection counts one error and the batch continues.
func (s *Service) Import(ctx context.Context, records []ImportRecord) (Result, error) {
	if len(records) == 0 {
		return Result{}, apperr.New(apperr.Validation, "invalid or empty students data")
	}
	res := Result{Total: len(records)}
	for _, rec := range records {
		if rec.Username == "" || rec.Password == "" || rec.Name == "" ||
			rec.Department == "" || rec.Section == "" || rec.RollNumber == "" {
			res.ErrorCount++
			continue
		}
		hash, err := auth.HashSecret(rec.Password, s.bcryptCost)
		if err != nil {
			res.ErrorCount++
			continue
		}
		st := Student{
			RollNumber: rec.RollNumber,
			Name:       rec.Name,
			Department: rec.Department,
			Section:    rec.Section,
		}
		u := auth.User{
			ID:           uuid.NewString(),
			Username:     rec.Username,
			PasswordHash: hash,
			Role:         auth.RoleStudent,
			Name:         rec.Name,
			Approved:     true,
		}
		if err := s.store.CreateWithUser(ctx, st, u); err != nil {
			res.ErrorCount++
			continue
		}
		res.SuccessCount++
	}
	return res, nil
}

// Info returns one roster entry.
func (s *Service) Info(ctx context.Context, rollNumber string) (*Student, error) {
	st, err := s.store.Get(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperr.New(apperr.NotFound, "student not found")
	}
	return st, nil
}

// List returns roster entries filtered by department and/or section.
func (s *Service) List(ctx context.Context, department, section string) ([]Student, error) {
	return s.store.List(ctx, department, section)
}
