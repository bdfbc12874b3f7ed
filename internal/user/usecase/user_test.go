package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/encrypter"
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

// fakeRepo is an in-memory user repository.
type fakeRepo struct {
	users map[string]model.User
}

func newFakeRepo(users ...model.User) *fakeRepo {
	r := &fakeRepo{users: make(map[string]model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) Get(_ context.Context, _ model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(_ context.Context, _ model.Scope, id string) (model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetOne(_ context.Context, _ model.Scope, opts repository.GetOneOptions) (model.User, error) {
	for _, u := range r.users {
		switch {
		case opts.ID != "" && u.ID == opts.ID:
			return u, nil
		case opts.Username != "" && u.Username == opts.Username:
			return u, nil
		case opts.Email != "" && u.Email == opts.Email:
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if u.ID == "" {
		u.ID = "generated-id"
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.User, error) {
	if _, ok := r.users[opts.User.ID]; !ok {
		return model.User{}, repository.ErrNotFound
	}
	r.users[opts.User.ID] = opts.User
	return opts.User, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func adminScope() model.Scope {
	return model.Scope{UserID: "admin-1", Roles: []string{model.RoleAdmin}}
}

// testGate mirrors the production table, reduced to the reassignment branch.
func testGate(t *testing.T) *gate.Gate {
	t.Helper()

	table := gate.Table{
		model.RoleSuperAdmin:   {Type: gate.TypeRole, Children: []string{model.RoleAdmin}},
		model.RoleAdmin:        {Type: gate.TypeRole, Children: []string{model.PermUserReassign}},
		model.PermUserReassign: {Type: gate.TypePermission, RuleName: "reAssignNonAdmin"},
	}
	rules := gate.Registry{
		"reAssignNonAdmin": gate.RuleFunc(func(actor gate.Actor, ctx map[string]any) bool {
			for _, r := range actor.Roles {
				if r == model.RoleSuperAdmin {
					return true
				}
			}
			targetRoles, ok := ctx["targetRoles"].([]string)
			if !ok {
				return true
			}
			for _, role := range targetRoles {
				if role == model.RoleAdmin || role == model.RoleSuperAdmin {
					return false
				}
			}
			return true
		}),
	}

	g, err := gate.Build(table, rules, nil)
	if err != nil {
		t.Fatalf("gate.Build: %v", err)
	}
	return g
}

func newUsecase(t *testing.T, repo repository.Repository) user.UseCase {
	t.Helper()
	return New(noopLogger{}, repo, testGate(t))
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with hashed password and default role", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newUsecase(t, repo)

		out, err := uc.Create(ctx, adminScope(), user.CreateInput{
			Username: "jo",
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if out.User.PasswordHash == nil {
			t.Fatal("password hash not set")
		}
		if *out.User.PasswordHash == "hunter2hunter2" {
			t.Error("password stored in clear")
		}
		if !encrypter.CheckPasswordHash("hunter2hunter2", *out.User.PasswordHash) {
			t.Error("stored hash does not verify against the password")
		}
		if len(out.User.Roles) != 1 || out.User.Roles[0] != model.RoleUser {
			t.Errorf("roles = %v, want [%s]", out.User.Roles, model.RoleUser)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeRepo(model.User{ID: "u1", Email: "jo@example.com"})
		uc := newUsecase(t, repo)

		_, err := uc.Create(ctx, adminScope(), user.CreateInput{
			Username: "jo2",
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		if !errors.Is(err, user.ErrUserExists) {
			t.Errorf("Create() error = %v, want ErrUserExists", err)
		}
	})

	t.Run("client-supplied id is honored", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newUsecase(t, repo)

		out, err := uc.Create(ctx, adminScope(), user.CreateInput{
			ID:       "11111111-1111-1111-1111-111111111111",
			Username: "jo",
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if out.User.ID != "11111111-1111-1111-1111-111111111111" {
			t.Errorf("ID = %q, want the client-supplied one", out.User.ID)
		}
	})
}

func TestUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		first := "Jo"
		repo := newFakeRepo(model.User{
			ID: "u1", Username: "jo", Email: "jo@example.com",
			FirstName: &first, Roles: []string{model.RoleUser},
		})
		uc := newUsecase(t, repo)

		email := "new@example.com"
		out, err := uc.Update(ctx, adminScope(), user.UpdateInput{ID: "u1", Email: &email})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.User.Email != "new@example.com" {
			t.Errorf("Email = %q, want new@example.com", out.User.Email)
		}
		if out.User.Username != "jo" || out.User.FirstName == nil || *out.User.FirstName != "Jo" {
			t.Errorf("untouched fields changed: %+v", out.User)
		}
	})

	t.Run("password change rehashes", func(t *testing.T) {
		repo := newFakeRepo(model.User{ID: "u1", Email: "jo@example.com"})
		uc := newUsecase(t, repo)

		pw := "new-password-123"
		out, err := uc.Update(ctx, adminScope(), user.UpdateInput{ID: "u1", Password: &pw})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.User.PasswordHash == nil || !encrypter.CheckPasswordHash(pw, *out.User.PasswordHash) {
			t.Error("password not rehashed")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := newUsecase(t, newFakeRepo())

		_, err := uc.Update(ctx, adminScope(), user.UpdateInput{ID: "ghost"})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("Update() error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestUsecase_Update_Roles(t *testing.T) {
	ctx := context.Background()

	adminActor := gate.Actor{UserID: "admin-1", Roles: []string{model.RoleAdmin}}
	superActor := gate.Actor{UserID: "super-1", Roles: []string{model.RoleSuperAdmin}}
	userActor := gate.Actor{UserID: "u1", Roles: []string{model.RoleUser}}

	tcs := map[string]struct {
		targetRoles []string
		newRoles    []string
		actor       gate.Actor
		wantErr     error
	}{
		"admin may assign user roles": {
			targetRoles: []string{model.RoleUser},
			newRoles:    []string{model.RoleUser},
			actor:       adminActor,
		},
		"admin may not grant admin": {
			targetRoles: []string{model.RoleUser},
			newRoles:    []string{model.RoleAdmin},
			actor:       adminActor,
			wantErr:     user.ErrForbiddenRoleChange,
		},
		"admin may not demote an admin": {
			targetRoles: []string{model.RoleAdmin},
			newRoles:    []string{model.RoleUser},
			actor:       adminActor,
			wantErr:     user.ErrForbiddenRoleChange,
		},
		"super admin may grant admin": {
			targetRoles: []string{model.RoleUser},
			newRoles:    []string{model.RoleAdmin},
			actor:       superActor,
		},
		"regular user may not reassign": {
			targetRoles: []string{model.RoleUser},
			newRoles:    []string{model.RoleUser},
			actor:       userActor,
			wantErr:     user.ErrForbiddenRoleChange,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo(model.User{ID: "target", Roles: tc.targetRoles})
			uc := newUsecase(t, repo)

			out, err := uc.Update(ctx, adminScope(), user.UpdateInput{
				ID:    "target",
				Roles: tc.newRoles,
				Actor: tc.actor,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && len(out.User.Roles) != len(tc.newRoles) {
				t.Errorf("Roles = %v, want %v", out.User.Roles, tc.newRoles)
			}
		})
	}
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		repo := newFakeRepo(model.User{ID: "u1"})
		uc := newUsecase(t, repo)

		if err := uc.Delete(ctx, adminScope(), "u1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, ok := repo.users["u1"]; ok {
			t.Error("user still present after delete")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := newUsecase(t, newFakeRepo())
		if err := uc.Delete(ctx, adminScope(), "ghost"); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("Delete() error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestUsecase_DetailMe(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(model.User{ID: "u1", Username: "jo"})
	uc := newUsecase(t, repo)

	out, err := uc.DetailMe(ctx, model.Scope{UserID: "u1", Roles: []string{model.RoleUser}})
	if err != nil {
		t.Fatalf("DetailMe() error = %v", err)
	}
	if out.User.ID != "u1" {
		t.Errorf("User.ID = %q, want u1", out.User.ID)
	}
}
