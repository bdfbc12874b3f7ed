package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nglume/nglume/internal/article/repository"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
	postgresPkg "github.com/nglume/nglume/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Article, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	where, args := buildArticleFilter(opts.Filter)

	var total int64
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*) FROM articles WHERE "+where), args...); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM articles WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		articleColumns, where, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset(),
	)

	var arts []model.Article
	if err := r.db.SelectContext(ctx, &arts, r.db.Rebind(listQuery), args...); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Get.Select: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return arts, paginator.Paginator{
		Total:       total,
		Count:       int64(len(arts)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Article, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.Article{}, repository.ErrNotFound
	}

	var art model.Article
	if err := r.db.GetContext(ctx, &art, queryDetailArticle, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.article.repository.postgres.Detail.Get: %v", err)
		return model.Article{}, err
	}

	return art, nil
}

func (r *implRepository) GetOneByPermalink(ctx context.Context, sc model.Scope, permalink string) (model.Article, error) {
	var art model.Article
	if err := r.db.GetContext(ctx, &art, queryGetOneByPermalink, permalink); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.article.repository.postgres.GetOneByPermalink.Get: %v", err)
		return model.Article{}, err
	}

	return art, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Article, error) {
	art := opts.Article
	if art.ID == "" {
		art.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(art.ID); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Create.IsUUID: %v", err)
		return model.Article{}, err
	}

	now := r.clock()
	art.CreatedAt = now
	art.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, queryInsertArticle, art); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Create.Insert: %v", err)
		return model.Article{}, err
	}

	return r.Detail(ctx, sc, art.ID)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Article, error) {
	art := opts.Article
	if err := postgresPkg.IsUUID(art.ID); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Update.IsUUID: %v", err)
		return model.Article{}, err
	}

	art.UpdatedAt = r.clock()

	res, err := r.db.NamedExecContext(ctx, queryUpdateArticle, art)
	if err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Update.Exec: %v", err)
		return model.Article{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Update.RowsAffected: %v", err)
		return model.Article{}, err
	}
	if affected == 0 {
		return model.Article{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, art.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, queryDeleteArticle, id, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) GetTags(ctx context.Context, sc model.Scope, articleID string) ([]model.Tag, error) {
	if err := postgresPkg.IsUUID(articleID); err != nil {
		return nil, repository.ErrNotFound
	}

	var tags []model.Tag
	if err := r.db.SelectContext(ctx, &tags, queryArticleTags, articleID); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.GetTags.Select: %v", err)
		return nil, err
	}

	return tags, nil
}

func (r *implRepository) SyncTags(ctx context.Context, sc model.Scope, articleID string, tagIDs []string) error {
	if err := postgresPkg.ValidateUUIDs(append([]string{articleID}, tagIDs...)); err != nil {
		return repository.ErrNotFound
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.SyncTags.Begin: %v", err)
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, queryClearArticleTags, articleID); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.SyncTags.Clear: %v", err)
		return err
	}

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, queryInsertArticleTag, articleID, tagID); err != nil {
			r.l.Errorf(ctx, "internal.article.repository.postgres.SyncTags.Insert: %v", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.article.repository.postgres.SyncTags.Commit: %v", err)
		return err
	}

	return nil
}

func buildArticleFilter(f repository.Filter) (string, []any) {
	clauses := []string{"deleted_at IS NULL"}
	args := make([]any, 0, 3)

	if f.AuthorID != "" {
		clauses = append(clauses, "author_id = ?")
		args = append(args, f.AuthorID)
	}
	if !f.Drafts {
		clauses = append(clauses, "draft = FALSE")
	}
	if f.Search != "" {
		clauses = append(clauses, "(title ILIKE ? OR content ILIKE ?)")
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}

	return strings.Join(clauses, " AND "), args
}
