package models

import "time"

type User struct {
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      *string   `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role. Role is absent
// on plain patients.
func (u User) IsAdmin() bool {
	return u.Role != nil && *u.Role == "admin"
}

type UpsertUserRequest struct {
	Name string `json:"name"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type AdminStatus struct {
	Admin bool `json:"admin"`
}
