package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// User represents a user entity in the domain layer.
type User struct {
	ID           string         `json:"id" db:"id"`
	Username     string         `json:"username" db:"username"`
	Email        string         `json:"email" db:"email"`
	FirstName    *string        `json:"first_name,omitempty" db:"first_name"`
	LastName     *string        `json:"last_name,omitempty" db:"last_name"`
	PasswordHash *string        `json:"-" db:"password_hash"`
	Roles        pq.StringArray `json:"roles" db:"roles"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty" db:"deleted_at"`
}

// FullName joins the name parts, skipping empties.
func (u *User) FullName() string {
	parts := make([]string, 0, 2)
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	return strings.Join(parts, " ")
}

// ToClaim builds the public-safe snapshot embedded in tokens so identity
// can be reconstructed without a database round-trip. Never includes the
// password hash.
func (u *User) ToClaim() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"name":     u.FullName(),
		"roles":    []string(u.Roles),
	}
}

// UserFromClaim reconstructs a user from the snapshot a token carries.
func UserFromClaim(claim map[string]any) (*User, error) {
	id, ok := claim["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("user claim missing id")
	}

	u := &User{ID: id}
	u.Username, _ = claim["username"].(string)
	u.Email, _ = claim["email"].(string)

	switch roles := claim["roles"].(type) {
	case []string:
		u.Roles = roles
	case []any:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				u.Roles = append(u.Roles, s)
			}
		}
	}

	return u, nil
}
