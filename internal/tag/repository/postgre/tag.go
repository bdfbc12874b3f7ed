package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/tag/repository"
	postgresPkg "github.com/nglume/nglume/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Tag, error) {
	var (
		tags []model.Tag
		err  error
	)
	if opts.Search != "" {
		err = r.db.SelectContext(ctx, &tags, querySearchTags, "%"+opts.Search+"%")
	} else {
		err = r.db.SelectContext(ctx, &tags, queryListTags)
	}
	if err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Get.Select: %v", err)
		return nil, err
	}

	return tags, nil
}

func (r *implRepository) GetOneByName(ctx context.Context, sc model.Scope, name string) (model.Tag, error) {
	var t model.Tag
	if err := r.db.GetContext(ctx, &t, queryGetOneTagByName, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tag{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.tag.repository.postgres.GetOneByName.Get: %v", err)
		return model.Tag{}, err
	}

	return t, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Tag, error) {
	t := opts.Tag
	if t.ID == "" {
		t.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(t.ID); err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Create.IsUUID: %v", err)
		return model.Tag{}, err
	}

	t.CreatedAt = r.clock()

	if _, err := r.db.NamedExecContext(ctx, queryInsertTag, t); err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Create.Insert: %v", err)
		return model.Tag{}, err
	}

	var created model.Tag
	if err := r.db.GetContext(ctx, &created, queryDetailTag, t.ID); err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Create.Detail: %v", err)
		return model.Tag{}, err
	}

	return created, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, queryDeleteTag, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.tag.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
