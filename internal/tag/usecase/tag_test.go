package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/tag"
	"github.com/nglume/nglume/internal/tag/repository"
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

// fakeRepo matches names case-insensitively, like the postgres layer.
type fakeRepo struct {
	tags map[string]model.Tag
}

func newFakeRepo(tags ...model.Tag) *fakeRepo {
	r := &fakeRepo{tags: make(map[string]model.Tag)}
	for _, tg := range tags {
		r.tags[tg.ID] = tg
	}
	return r
}

func (r *fakeRepo) Get(_ context.Context, _ model.Scope, opts repository.GetOptions) ([]model.Tag, error) {
	out := make([]model.Tag, 0, len(r.tags))
	for _, tg := range r.tags {
		if opts.Search != "" && !strings.Contains(strings.ToLower(tg.Tag), strings.ToLower(opts.Search)) {
			continue
		}
		out = append(out, tg)
	}
	return out, nil
}

func (r *fakeRepo) GetOneByName(_ context.Context, _ model.Scope, name string) (model.Tag, error) {
	for _, tg := range r.tags {
		if strings.EqualFold(tg.Tag, name) {
			return tg, nil
		}
	}
	return model.Tag{}, repository.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.Tag, error) {
	tg := opts.Tag
	if tg.ID == "" {
		tg.ID = "generated-id"
	}
	r.tags[tg.ID] = tg
	return tg, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	if _, ok := r.tags[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tags, id)
	return nil
}

func adminScope() model.Scope {
	return model.Scope{UserID: "admin-1", Roles: []string{model.RoleAdmin}}
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo())

		created, err := uc.Create(ctx, adminScope(), tag.CreateInput{ID: "t1", Tag: "golang"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if created.ID != "t1" || created.Tag != "golang" {
			t.Errorf("created = %+v", created)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(model.Tag{ID: "t1", Tag: "golang"}))

		_, err := uc.Create(ctx, adminScope(), tag.CreateInput{ID: "t2", Tag: "golang"})
		if !errors.Is(err, tag.ErrTagExists) {
			t.Errorf("Create() error = %v, want ErrTagExists", err)
		}
	})

	t.Run("duplicate name differing only in case", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo(model.Tag{ID: "t1", Tag: "golang"}))

		_, err := uc.Create(ctx, adminScope(), tag.CreateInput{ID: "t2", Tag: "GoLang"})
		if !errors.Is(err, tag.ErrTagExists) {
			t.Errorf("Create() error = %v, want ErrTagExists", err)
		}
	})
}

func TestUsecase_Get(t *testing.T) {
	ctx := context.Background()
	uc := New(noopLogger{}, newFakeRepo(
		model.Tag{ID: "t1", Tag: "golang"},
		model.Tag{ID: "t2", Tag: "testing"},
	))

	tags, err := uc.Get(ctx, adminScope(), tag.GetInput{Search: "go"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(tags) != 1 || tags[0].Tag != "golang" {
		t.Errorf("tags = %+v, want just golang", tags)
	}
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		repo := newFakeRepo(model.Tag{ID: "t1", Tag: "golang"})
		uc := New(noopLogger{}, repo)

		if err := uc.Delete(ctx, adminScope(), "t1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, ok := repo.tags["t1"]; ok {
			t.Error("tag still present after delete")
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		uc := New(noopLogger{}, newFakeRepo())
		if err := uc.Delete(ctx, adminScope(), "ghost"); !errors.Is(err, tag.ErrTagNotFound) {
			t.Errorf("Delete() error = %v, want ErrTagNotFound", err)
		}
	})
}
