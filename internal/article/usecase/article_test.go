package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"

	"github.com/nglume/nglume/internal/article"
	"github.com/nglume/nglume/internal/article/repository"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/gate"
	"github.com/nglume/nglume/pkg/paginator"
)

type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any)          {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any)           {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, ...any)           {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, ...any)          {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Fatal(context.Context, ...any)          {}
func (noopLogger) Fatalf(context.Context, string, ...any) {}

// testGate mirrors the production table, reduced to the article branch.
func testGate(t *testing.T) *gate.Gate {
	t.Helper()

	table := gate.Table{
		model.RoleAdmin: {Type: gate.TypeRole, Children: []string{model.RoleUser}},
		model.RoleUser: {Type: gate.TypeRole, Children: []string{
			model.PermArticleList,
			model.PermArticleGetOne,
			model.PermArticleCreate,
			model.PermArticleUpdate,
			model.PermArticleDelete,
		}},
		model.PermArticleList:   {Type: gate.TypePermission},
		model.PermArticleGetOne: {Type: gate.TypePermission},
		model.PermArticleCreate: {Type: gate.TypePermission},
		model.PermArticleUpdate: {Type: gate.TypePermission, RuleName: "manipulateWithOwn"},
		model.PermArticleDelete: {Type: gate.TypePermission, RuleName: "manipulateWithOwn"},
	}
	rules := gate.Registry{
		"manipulateWithOwn": gate.RuleFunc(func(actor gate.Actor, ctx map[string]any) bool {
			for _, r := range actor.Roles {
				if r == model.RoleAdmin || r == model.RoleSuperAdmin {
					return true
				}
			}
			owner, ok := ctx["userId"].(string)
			return ok && owner != "" && owner == actor.UserID
		}),
	}

	g, err := gate.Build(table, rules, nil)
	if err != nil {
		t.Fatalf("gate.Build: %v", err)
	}
	return g
}

// fakeRepo serves articles from memory. syncErr, when set, is returned
// by SyncTags.
type fakeRepo struct {
	articles map[string]model.Article
	tags     map[string][]model.Tag
	syncErr  error

	lastGetOpts repository.GetOptions
}

func newFakeRepo(articles ...model.Article) *fakeRepo {
	r := &fakeRepo{
		articles: make(map[string]model.Article),
		tags:     make(map[string][]model.Tag),
	}
	for _, a := range articles {
		r.articles[a.ID] = a
	}
	return r
}

func (r *fakeRepo) Get(_ context.Context, _ model.Scope, opts repository.GetOptions) ([]model.Article, paginator.Paginator, error) {
	r.lastGetOpts = opts
	out := make([]model.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(_ context.Context, _ model.Scope, id string) (model.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return model.Article{}, repository.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetOneByPermalink(_ context.Context, _ model.Scope, permalink string) (model.Article, error) {
	for _, a := range r.articles {
		if a.Permalink != nil && *a.Permalink == permalink {
			return a, nil
		}
	}
	return model.Article{}, repository.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.Article, error) {
	a := opts.Article
	if a.ID == "" {
		a.ID = "generated-id"
	}
	r.articles[a.ID] = a
	return a, nil
}

func (r *fakeRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.Article, error) {
	if _, ok := r.articles[opts.Article.ID]; !ok {
		return model.Article{}, repository.ErrNotFound
	}
	r.articles[opts.Article.ID] = opts.Article
	return opts.Article, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	if _, ok := r.articles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeRepo) GetTags(_ context.Context, _ model.Scope, articleID string) ([]model.Tag, error) {
	return r.tags[articleID], nil
}

func (r *fakeRepo) SyncTags(_ context.Context, _ model.Scope, articleID string, tagIDs []string) error {
	if r.syncErr != nil {
		return r.syncErr
	}
	tags := make([]model.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, model.Tag{ID: id, Tag: "tag-" + id})
	}
	r.tags[articleID] = tags
	return nil
}

func userScope(id string) model.Scope {
	return model.Scope{UserID: id, Roles: []string{model.RoleUser}}
}

func adminScope() model.Scope {
	return model.Scope{UserID: "admin-1", Roles: []string{model.RoleAdmin}}
}

func strp(s string) *string { return &s }

func TestUsecase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("draft listing is scoped to own articles for regular users", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		_, err := uc.Get(ctx, userScope("u1"), article.GetInput{Filter: article.Filter{Drafts: true}})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !repo.lastGetOpts.Filter.Drafts {
			t.Error("drafts filter not forwarded")
		}
		if repo.lastGetOpts.Filter.AuthorID != "u1" {
			t.Errorf("AuthorID = %q, want the requester's own id", repo.lastGetOpts.Filter.AuthorID)
		}
	})

	t.Run("admins may list anyone's drafts", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		_, err := uc.Get(ctx, adminScope(), article.GetInput{Filter: article.Filter{Drafts: true}})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if repo.lastGetOpts.Filter.AuthorID != "" {
			t.Errorf("AuthorID = %q, want unscoped", repo.lastGetOpts.Filter.AuthorID)
		}
	})
}

func TestUsecase_Detail(t *testing.T) {
	ctx := context.Background()
	draft := model.Article{ID: "a1", Title: "wip", AuthorID: "u1", Draft: true}

	tcs := map[string]struct {
		sc      model.Scope
		wantErr error
	}{
		"author sees own draft":          {sc: userScope("u1")},
		"admin sees any draft":           {sc: adminScope()},
		"stranger gets not found":        {sc: userScope("u2"), wantErr: article.ErrArticleNotFound},
		"missing article gets not found": {sc: userScope("u1"), wantErr: article.ErrArticleNotFound},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo(draft)
			uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

			id := "a1"
			if name == "missing article gets not found" {
				id = "ghost"
			}

			out, err := uc.Detail(ctx, tc.sc, id)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Detail() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && out.Article.ID != "a1" {
				t.Errorf("Article.ID = %q, want a1", out.Article.ID)
			}
		})
	}
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("author is taken from the scope", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		out, err := uc.Create(ctx, userScope("u1"), article.CreateInput{Title: "hello", Content: "world"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if out.Article.AuthorID != "u1" {
			t.Errorf("AuthorID = %q, want u1", out.Article.AuthorID)
		}
		if out.Article.Permalink != nil || out.Article.Excerpt != nil {
			t.Error("empty permalink/excerpt should stay nil")
		}
	})

	t.Run("duplicate permalink", func(t *testing.T) {
		repo := newFakeRepo(model.Article{ID: "a1", AuthorID: "u2", Permalink: strp("hello")})
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		_, err := uc.Create(ctx, userScope("u1"), article.CreateInput{Title: "hi", Permalink: "hello"})
		if !errors.Is(err, article.ErrPermalinkInUse) {
			t.Errorf("Create() error = %v, want ErrPermalinkInUse", err)
		}
	})
}

func TestUsecase_Update(t *testing.T) {
	ctx := context.Background()
	base := model.Article{ID: "a1", Title: "old", AuthorID: "u1", Permalink: strp("old-link")}

	t.Run("non-author is forbidden", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

		_, err := uc.Update(ctx, userScope("u2"), article.UpdateInput{ID: "a1", Title: strp("new")})
		if !errors.Is(err, article.ErrForbidden) {
			t.Errorf("Update() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin may edit anyone's article", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

		out, err := uc.Update(ctx, adminScope(), article.UpdateInput{ID: "a1", Title: strp("new")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.Article.Title != "new" {
			t.Errorf("Title = %q, want new", out.Article.Title)
		}
	})

	t.Run("author keeps own permalink on update", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

		// Re-submitting the current permalink must not trip the
		// uniqueness check.
		out, err := uc.Update(ctx, userScope("u1"), article.UpdateInput{ID: "a1", Permalink: strp("old-link")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.Article.Permalink == nil || *out.Article.Permalink != "old-link" {
			t.Errorf("Permalink = %v, want old-link", out.Article.Permalink)
		}
	})

	t.Run("permalink owned by another article", func(t *testing.T) {
		other := model.Article{ID: "a2", AuthorID: "u2", Permalink: strp("taken")}
		uc := New(noopLogger{}, newFakeRepo(base, other), testGate(t)).(*usecase)

		_, err := uc.Update(ctx, userScope("u1"), article.UpdateInput{ID: "a1", Permalink: strp("taken")})
		if !errors.Is(err, article.ErrPermalinkInUse) {
			t.Errorf("Update() error = %v, want ErrPermalinkInUse", err)
		}
	})

	t.Run("empty permalink clears it", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

		out, err := uc.Update(ctx, userScope("u1"), article.UpdateInput{ID: "a1", Permalink: strp("")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.Article.Permalink != nil {
			t.Errorf("Permalink = %v, want nil", out.Article.Permalink)
		}
	})
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	base := model.Article{ID: "a1", AuthorID: "u1"}

	tcs := map[string]struct {
		sc      model.Scope
		wantErr error
	}{
		"author may delete":       {sc: userScope("u1")},
		"admin may delete":        {sc: adminScope()},
		"non-author is forbidden": {sc: userScope("u2"), wantErr: article.ErrForbidden},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

			err := uc.Delete(ctx, tc.sc, "a1")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUsecase_SyncTags(t *testing.T) {
	ctx := context.Background()
	base := model.Article{ID: "a1", AuthorID: "u1"}

	t.Run("replaces the tag set", func(t *testing.T) {
		repo := newFakeRepo(base)
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		tags, err := uc.SyncTags(ctx, userScope("u1"), article.SyncTagsInput{
			ArticleID: "a1",
			TagIDs:    []string{"t1", "t2"},
		})
		if err != nil {
			t.Fatalf("SyncTags() error = %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("got %d tags, want 2", len(tags))
		}
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(base), testGate(t)).(*usecase)

		_, err := uc.SyncTags(ctx, userScope("u2"), article.SyncTagsInput{ArticleID: "a1", TagIDs: []string{"t1"}})
		if !errors.Is(err, article.ErrForbidden) {
			t.Errorf("SyncTags() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("foreign key violation maps to unknown tag", func(t *testing.T) {
		repo := newFakeRepo(base)
		repo.syncErr = &pq.Error{Code: "23503"}
		uc := New(noopLogger{}, repo, testGate(t)).(*usecase)

		_, err := uc.SyncTags(ctx, userScope("u1"), article.SyncTagsInput{ArticleID: "a1", TagIDs: []string{"ghost"}})
		if !errors.Is(err, article.ErrUnknownTag) {
			t.Errorf("SyncTags() error = %v, want ErrUnknownTag", err)
		}
	})

	t.Run("unknown article", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(), testGate(t)).(*usecase)

		_, err := uc.SyncTags(ctx, userScope("u1"), article.SyncTagsInput{ArticleID: "ghost"})
		if !errors.Is(err, article.ErrArticleNotFound) {
			t.Errorf("SyncTags() error = %v, want ErrArticleNotFound", err)
		}
	})
}
