package auth

import "time"

// Roles accepted at registration.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleFaculty || role == RoleStudent
}

// User is a credential-store record. Department, roll number and section are
// optional and only filled for some roles.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Name         string
	Department   *string
	RollNumber   *string
	Section      *string
	Approved     bool
	CreatedAt    time.Time
}

// View is the sanitized shape returned to clients. It never carries the hash.
type View struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Department *string `json:"department"`
	RollNumber *string `json:"rollNumber"`
	Section    *string `json:"section"`
}

// SanitizedView strips the credential fields from a user.
func (u *User) SanitizedView() View {
	return View{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		Name:       u.Name,
		Department: u.Department,
		RollNumber: u.RollNumber,
		Section:    u.Section,
	}
}

// PendingFacultyView is the admin listing shape for unapproved faculty.
type PendingFacultyView struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
