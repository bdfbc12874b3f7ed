package model

import "github.com/nglume/nglume/pkg/gate"

// Role keys used by the permission table.
const (
	RoleSuperAdmin = "superAdmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// Scope is the authenticated identity attached to a request context.
type Scope struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	JTI      string   `json:"jti"`
	// ViaToken records authentication provenance: true when the identity
	// came from a presented token, false for credential login.
	ViaToken bool `json:"via_token"`
}

// HasRole checks whether the scope holds the given role key directly.
func (s Scope) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin checks if the scope holds an admin role directly.
func (s Scope) IsAdmin() bool {
	return s.HasRole(RoleAdmin) || s.HasRole(RoleSuperAdmin)
}

// ToActor adapts the scope for permission queries.
func (s Scope) ToActor() gate.Actor {
	return gate.Actor{UserID: s.UserID, Roles: s.Roles}
}

// NewScope builds a scope from a resolved user.
func NewScope(u *User, jti string, viaToken bool) Scope {
	return Scope{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    []string(u.Roles),
		JTI:      jti,
		ViaToken: viaToken,
	}
}
