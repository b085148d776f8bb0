package domain

import "time"

// Roles assignable to a user at registration.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authenticated identity in the platform.
// The password is only ever held as a bcrypt hash.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
