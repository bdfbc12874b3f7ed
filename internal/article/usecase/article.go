package usecase

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/nglume/nglume/internal/article"
	"github.com/nglume/nglume/internal/article/repository"
	"github.com/nglume/nglume/internal/model"
)

// foreignKeyViolation is the postgres error code raised when a tag link
// references a missing row.
const foreignKeyViolation = "23503"

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip article.GetInput) (article.GetArticleOutput, error) {
	filter := repository.Filter{
		AuthorID: ip.Filter.AuthorID,
		Search:   ip.Filter.Search,
	}

	// Drafts are only listed for admins, or scoped down to the
	// requester's own articles.
	if ip.Filter.Drafts {
		filter.Drafts = true
		if !sc.IsAdmin() {
			filter.AuthorID = sc.UserID
		}
	}

	arts, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:        filter,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.article.usecase.Get: %v", err)
		return article.GetArticleOutput{}, err
	}

	return article.GetArticleOutput{
		Articles:  arts,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (article.ArticleOutput, error) {
	art, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return article.ArticleOutput{}, article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.Detail: %v", err)
		return article.ArticleOutput{}, err
	}

	if art.Draft && !uc.canManipulate(sc, model.PermArticleUpdate, art.AuthorID) {
		return article.ArticleOutput{}, article.ErrArticleNotFound
	}

	tags, err := uc.repo.GetTags(ctx, sc, art.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.article.usecase.Detail.GetTags: %v", err)
		return article.ArticleOutput{}, err
	}
	art.Tags = tags

	return article.ArticleOutput{Article: art}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip article.CreateInput) (article.ArticleOutput, error) {
	if ip.Permalink != "" {
		if err := uc.ensurePermalinkFree(ctx, sc, ip.Permalink, ip.ID); err != nil {
			return article.ArticleOutput{}, err
		}
	}

	art := model.Article{
		ID:       ip.ID,
		Title:    ip.Title,
		Content:  ip.Content,
		AuthorID: sc.UserID,
		Draft:    ip.Draft,
	}
	if ip.Permalink != "" {
		art.Permalink = &ip.Permalink
	}
	if ip.Excerpt != "" {
		art.Excerpt = &ip.Excerpt
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Article: art})
	if err != nil {
		uc.l.Errorf(ctx, "internal.article.usecase.Create: %v", err)
		return article.ArticleOutput{}, err
	}

	return article.ArticleOutput{Article: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip article.UpdateInput) (article.ArticleOutput, error) {
	art, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return article.ArticleOutput{}, article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.Update.Detail: %v", err)
		return article.ArticleOutput{}, err
	}

	if !uc.canManipulate(sc, model.PermArticleUpdate, art.AuthorID) {
		return article.ArticleOutput{}, article.ErrForbidden
	}

	if ip.Title != nil {
		art.Title = *ip.Title
	}
	if ip.Permalink != nil {
		if *ip.Permalink == "" {
			art.Permalink = nil
		} else {
			if err := uc.ensurePermalinkFree(ctx, sc, *ip.Permalink, art.ID); err != nil {
				return article.ArticleOutput{}, err
			}
			art.Permalink = ip.Permalink
		}
	}
	if ip.Content != nil {
		art.Content = *ip.Content
	}
	if ip.Excerpt != nil {
		if *ip.Excerpt == "" {
			art.Excerpt = nil
		} else {
			art.Excerpt = ip.Excerpt
		}
	}
	if ip.Draft != nil {
		art.Draft = *ip.Draft
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Article: art})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return article.ArticleOutput{}, article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.Update: %v", err)
		return article.ArticleOutput{}, err
	}

	return article.ArticleOutput{Article: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	art, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.Delete.Detail: %v", err)
		return err
	}

	if !uc.canManipulate(sc, model.PermArticleDelete, art.AuthorID) {
		return article.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) GetTags(ctx context.Context, sc model.Scope, id string) ([]model.Tag, error) {
	if _, err := uc.repo.Detail(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.GetTags.Detail: %v", err)
		return nil, err
	}

	tags, err := uc.repo.GetTags(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.article.usecase.GetTags: %v", err)
		return nil, err
	}

	return tags, nil
}

func (uc *usecase) SyncTags(ctx context.Context, sc model.Scope, ip article.SyncTagsInput) ([]model.Tag, error) {
	art, err := uc.repo.Detail(ctx, sc, ip.ArticleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.ErrArticleNotFound
		}
		uc.l.Errorf(ctx, "internal.article.usecase.SyncTags.Detail: %v", err)
		return nil, err
	}

	if !uc.canManipulate(sc, model.PermArticleUpdate, art.AuthorID) {
		return nil, article.ErrForbidden
	}

	if err := uc.repo.SyncTags(ctx, sc, art.ID, ip.TagIDs); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return nil, article.ErrUnknownTag
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.ErrUnknownTag
		}
		uc.l.Errorf(ctx, "internal.article.usecase.SyncTags: %v", err)
		return nil, err
	}

	tags, err := uc.repo.GetTags(ctx, sc, art.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.article.usecase.SyncTags.GetTags: %v", err)
		return nil, err
	}

	return tags, nil
}

func (uc *usecase) ensurePermalinkFree(ctx context.Context, sc model.Scope, permalink, selfID string) error {
	existing, err := uc.repo.GetOneByPermalink(ctx, sc, permalink)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		uc.l.Errorf(ctx, "internal.article.usecase.ensurePermalinkFree: %v", err)
		return err
	}
	if existing.ID != selfID {
		return article.ErrPermalinkInUse
	}

	return nil
}

func (uc *usecase) canManipulate(sc model.Scope, permission, authorID string) bool {
	return uc.gate.Can(sc.ToActor(), permission, map[string]any{"userId": authorID})
}
