package user

import (
	"context"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/encrypter"
)

// provider adapts the user repository to the guard's UserProvider.
type provider struct {
	repo repository.Repository
}

var _ auth.UserProvider = &provider{}

// NewProvider returns the UserProvider backing token resolution and
// credential checks.
func NewProvider(repo repository.Repository) auth.UserProvider {
	return &provider{repo: repo}
}

func (p *provider) RetrieveByID(ctx context.Context, id string) (*model.User, error) {
	usr, err := p.repo.Detail(ctx, model.Scope{}, id)
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (p *provider) RetrieveByEmail(ctx context.Context, email string) (*model.User, error) {
	usr, err := p.repo.GetOne(ctx, model.Scope{}, repository.GetOneOptions{Email: email})
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (p *provider) ValidateCredentials(ctx context.Context, u *model.User, password string) bool {
	if u == nil || u.PasswordHash == nil {
		return false
	}
	return encrypter.CheckPasswordHash(password, *u.PasswordHash)
}
