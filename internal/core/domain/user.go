package domain

import "time"

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDataEntry Role = "DATA_ENTRY"
)

// IsValid reports whether the role is one of the recognised values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDataEntry
}

// User represents an application account. Accounts are created at
// registration and never mutated afterwards.
type User struct {
	UserID       int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
