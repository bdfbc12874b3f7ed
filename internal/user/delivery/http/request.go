package http

import (
	"net/http"
	"net/mail"

	"github.com/nglume/nglume/internal/user"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/paginator"
)

type createUserReq struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

func (r createUserReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Username == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "username", "username is required"))
	}
	if r.Email == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "email", "email is required"))
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "email", "email is invalid"))
	}
	if len(r.Password) < 8 {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "password", "password must be at least 8 characters"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type updateUserReq struct {
	Username  *string  `json:"username"`
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Roles     []string `json:"roles"`
}

func (r updateUserReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "email", "email is invalid"))
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "password", "password must be at least 8 characters"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type getUsersReq struct {
	paginator.PaginateQuery
	Search string `form:"q"`
}

func (r getUsersReq) toInput() user.GetInput {
	return user.GetInput{
		Filter:        user.Filter{Search: r.Search},
		PaginateQuery: r.PaginateQuery,
	}
}
