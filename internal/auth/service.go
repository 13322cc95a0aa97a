package auth

import (
	"context"

	"github.com/google/uuid"

	"attendance/internal/apperr"
)

// UserStore is the credential-store surface the service needs. Implementations
// return apperr kinds for conflicts and not-found so callers never inspect
// driver errors.
type UserStore interface {
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	PendingFaculty(ctx context.Context) ([]User, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Service registers and authenticates users and manages faculty approval.
type Service struct {
	store      UserStore
	bcryptCost int
}

// NewService creates a service backed by a user store.
func NewService(store UserStore, bcryptCost int) *Service {
	return &Service{store: store, bcryptCost: bcryptCost}
}

// RegisterInput is the registration request.
type RegisterInput struct {
	Username   string
	Password   string
	Role       string
	Name       string
	Department string
	RollNumber string
	Section    string
}

// RegisterResult reports the created user and whether an admin must approve it.
type RegisterResult struct {
	UserID        string
	NeedsApproval bool
}

// Register creates a user. Faculty accounts start unapproved.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" || in.Name == "" {
		return RegisterResult{}, apperr.New(apperr.Validation, "missing required fields")
	}
	if !ValidRole(in.Role) {
		return RegisterResult{}, apperr.New(apperr.Validation, "unknown role")
	}

	hash, err := HashSecret(in.Password, s.bcryptCost)
	if err != nil {
		return RegisterResult{}, apperr.Wrap(apperr.Store, "password hashing failed", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Name:         in.Name,
		Department:   optional(in.Department),
		RollNumber:   optional(in.RollNumber),
		Section:      optional(in.Section),
		Approved:     in.Role != RoleFaculty,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{UserID: u.ID, NeedsApproval: in.Role == RoleFaculty}, nil
}

// Login checks credentials and the faculty approval gate, returning a
// sanitized view on success.
func (s *Service) Login(ctx context.Context, username, password string) (View, error) {
	if username == "" || password == "" {
		return View{}, apperr.New(apperr.Validation, "username and password required")
	}
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return View{}, err
	}
	if u == nil || !CheckSecret(u.PasswordHash, password) {
		return View{}, apperr.New(apperr.Auth, "invalid credentials")
	}
	if u.Role == RoleFaculty && !u.Approved {
		return View{}, apperr.New(apperr.Forbidden, "account pending admin approval")
	}
	return u.SanitizedView(), nil
}

// PendingFaculty lists faculty accounts awaiting approval.
func (s *Service) PendingFaculty(ctx context.Context) ([]PendingFacultyView, error) {
	users, err := s.store.PendingFaculty(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PendingFacultyView, 0, len(users))
	for _, u := range users {
		views = append(views, PendingFacultyView{
			ID:         u.ID,
			Username:   u.Username,
			Name:       u.Name,
			Department: u.Department,
			CreatedAt:  u.CreatedAt,
		})
	}
	return views, nil
}

// ApproveFaculty flips the approval flag once.
func (s *Service) ApproveFaculty(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.Validation, "faculty id required")
	}
	return s.store.Approve(ctx, id)
}

// DeleteFaculty removes a faculty account.
func (s *Service) DeleteFaculty(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.Validation, "faculty id required")
	}
	return s.store.Delete(ctx, id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
