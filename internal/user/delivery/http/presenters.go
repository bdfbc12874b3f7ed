package http

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user"
	"github.com/nglume/nglume/pkg/paginator"
	"github.com/nglume/nglume/pkg/response"
)

// userResp is the public-safe representation of a user.
type userResp struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	FirstName *string           `json:"first_name,omitempty"`
	LastName  *string           `json:"last_name,omitempty"`
	Roles     []string          `json:"roles"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     []string(u.Roles),
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type listUserResp struct {
	Users     []userResp                  `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListUserResp(out user.GetUserOutput) listUserResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listUserResp{
		Users:     users,
		Paginator: out.Paginator.ToResponse(),
	}
}
