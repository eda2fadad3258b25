package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is an admin-panel account. Clients book anonymously and have no account.
type User struct {
	ID                  int64      `json:"id"`
	Email               string     `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash        string     `json:"-"`
	Name                string     `json:"name"`
	Role                UserRole   `json:"role"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
