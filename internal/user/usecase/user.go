package usecase

import (
	"context"
	"errors"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/encrypter"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetUserOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Search: ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	usrs, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	return user.GetUserOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (user.UserOutput, error) {
	_, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err == nil {
		return user.UserOutput{}, user.ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.GetOne: %v", err)
		return user.UserOutput{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.HashPassword: %v", err)
		return user.UserOutput{}, err
	}

	roles := ip.Roles
	if len(roles) == 0 {
		roles = []string{model.RoleUser}
	}

	usr := model.User{
		ID:           ip.ID,
		Username:     ip.Username,
		Email:        ip.Email,
		PasswordHash: &hash,
		Roles:        roles,
	}
	if ip.FirstName != "" {
		usr.FirstName = &ip.FirstName
	}
	if ip.LastName != "" {
		usr.LastName = &ip.LastName
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip user.UpdateInput) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Update.Detail: %v", err)
		return user.UserOutput{}, err
	}

	if ip.Username != nil {
		usr.Username = *ip.Username
	}
	if ip.Email != nil {
		usr.Email = *ip.Email
	}
	if ip.FirstName != nil {
		usr.FirstName = ip.FirstName
	}
	if ip.LastName != nil {
		usr.LastName = ip.LastName
	}
	if ip.Password != nil {
		hash, err := encrypter.HashPassword(*ip.Password)
		if err != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.Update.HashPassword: %v", err)
			return user.UserOutput{}, err
		}
		usr.PasswordHash = &hash
	}
	if ip.Roles != nil {
		// The reassignment rule sees both what the target holds now and
		// what they would hold, so demoting an admin is covered too.
		target := append(append([]string{}, usr.Roles...), ip.Roles...)
		if !uc.gate.Can(ip.Actor, model.PermUserReassign, map[string]any{"targetRoles": target}) {
			return user.UserOutput{}, user.ErrForbiddenRoleChange
		}
		usr.Roles = ip.Roles
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return err
	}

	return nil
}
