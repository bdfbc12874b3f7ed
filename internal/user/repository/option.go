package repository

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
)

// Filter contains filtering options for user queries.
type Filter struct {
	IDs    []string
	Search string // matches username, email or name parts
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// GetOneOptions contains options for getting a single user.
// Exactly one selector should be set.
type GetOneOptions struct {
	ID       string
	Username string
	Email    string
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// UpdateOptions contains options for updating a user.
type UpdateOptions struct {
	User model.User
}
