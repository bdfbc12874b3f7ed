package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/paginator"
	postgresPkg "github.com/nglume/nglume/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	where, args := buildUserFilter(opts.Filter)

	var total int64
	countQuery, countArgs, err := sqlx.In("SELECT COUNT(*) FROM users WHERE "+where, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.In: %v", err)
		return nil, paginator.Paginator{}, err
	}
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), countArgs...); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	listQuery, listArgs, err := sqlx.In(fmt.Sprintf(
		"SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		userColumns, where, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset(),
	), args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.In: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var usrs []model.User
	if err := r.db.SelectContext(ctx, &usrs, r.db.Rebind(listQuery), listArgs...); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Select: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return usrs, paginator.Paginator{
		Total:       total,
		Count:       int64(len(usrs)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.User{}, repository.ErrNotFound
	}

	var usr model.User
	if err := r.db.GetContext(ctx, &usr, queryDetailUser, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Get: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	var (
		query string
		arg   string
	)
	switch {
	case opts.ID != "":
		query, arg = queryDetailUser, opts.ID
	case opts.Username != "":
		query, arg = queryGetOneByUsername, opts.Username
	case opts.Email != "":
		query, arg = queryGetOneByEmail, opts.Email
	default:
		return model.User{}, repository.ErrNotFound
	}

	var usr model.User
	if err := r.db.GetContext(ctx, &usr, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Get: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	if usr.ID == "" {
		usr.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.IsUUID: %v", err)
		return model.User{}, err
	}

	now := r.clock()
	usr.CreatedAt = now
	usr.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, queryInsertUser, usr); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Insert: %v", err)
		return model.User{}, err
	}

	return r.Detail(ctx, sc, usr.ID)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	usr := opts.User
	if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.IsUUID: %v", err)
		return model.User{}, err
	}

	usr.UpdatedAt = r.clock()

	res, err := r.db.NamedExecContext(ctx, queryUpdateUser, usr)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.Exec: %v", err)
		return model.User{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.RowsAffected: %v", err)
		return model.User{}, err
	}
	if affected == 0 {
		return model.User{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, usr.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, queryDeleteUser, id, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// buildUserFilter renders the WHERE clause with "?" bindvars; callers pass
// it through sqlx.In and Rebind.
func buildUserFilter(f repository.Filter) (string, []any) {
	clauses := []string{"deleted_at IS NULL"}
	args := make([]any, 0, 4)

	if len(f.IDs) > 0 {
		clauses = append(clauses, "id IN (?)")
		args = append(args, f.IDs)
	}
	if f.Search != "" {
		clauses = append(clauses, "(username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?)")
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	return strings.Join(clauses, " AND "), args
}
