package user

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/gate"
	"github.com/nglume/nglume/pkg/paginator"
)

type CreateInput struct {
	// ID is optional; the original clients generate their own UUIDs.
	ID        string
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Roles     []string
}

type UpdateInput struct {
	ID        string
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Roles     []string
	// Actor is the requester; role changes are evaluated against the
	// union of the target's old and new role sets.
	Actor gate.Actor
}

type Filter struct {
	IDs    []string
	Search string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type UserOutput struct {
	User model.User
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}
