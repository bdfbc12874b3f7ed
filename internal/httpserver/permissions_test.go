package httpserver

import (
	"testing"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/gate"
)

func actor(id string, roles ...string) gate.Actor {
	return gate.Actor{UserID: id, Roles: roles}
}

func TestBuildGate(t *testing.T) {
	if _, err := buildGate(nil); err != nil {
		t.Fatalf("buildGate() error = %v", err)
	}
	if _, err := buildGate([]string{model.RoleUser}); err != nil {
		t.Fatalf("buildGate(default roles) error = %v", err)
	}
}

func TestPermissionTable_Grants(t *testing.T) {
	g, err := buildGate(nil)
	if err != nil {
		t.Fatalf("buildGate() error = %v", err)
	}

	tcs := map[string]struct {
		actor      gate.Actor
		permission string
		ctx        map[string]any
		want       bool
	}{
		"user may create articles": {
			actor:      actor("u1", model.RoleUser),
			permission: model.PermArticleCreate,
			want:       true,
		},
		"user may not list users": {
			actor:      actor("u1", model.RoleUser),
			permission: model.PermUserList,
			want:       false,
		},
		"user may view own profile": {
			actor:      actor("u1", model.RoleUser),
			permission: model.PermUserGetOne,
			ctx:        map[string]any{"userId": "u1"},
			want:       true,
		},
		"user may not view another profile": {
			actor:      actor("u1", model.RoleUser),
			permission: model.PermUserGetOne,
			ctx:        map[string]any{"userId": "u2"},
			want:       false,
		},
		"admin inherits user permissions": {
			actor:      actor("a1", model.RoleAdmin),
			permission: model.PermArticleList,
			want:       true,
		},
		"admin may edit another profile": {
			actor:      actor("a1", model.RoleAdmin),
			permission: model.PermUserUpdate,
			ctx:        map[string]any{"userId": "u2"},
			want:       true,
		},
		"super admin inherits admin permissions": {
			actor:      actor("s1", model.RoleSuperAdmin),
			permission: model.PermUserDelete,
			want:       true,
		},
		"anonymous actor is denied": {
			actor:      actor(""),
			permission: model.PermArticleList,
			want:       false,
		},
		"unknown permission is denied": {
			actor:      actor("s1", model.RoleSuperAdmin),
			permission: "nonsense.node",
			want:       false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := g.Can(tc.actor, tc.permission, tc.ctx); got != tc.want {
				t.Errorf("Can(%v, %q) = %v, want %v", tc.actor.Roles, tc.permission, got, tc.want)
			}
		})
	}
}

func TestPermissionTable_Impersonation(t *testing.T) {
	g, err := buildGate(nil)
	if err != nil {
		t.Fatalf("buildGate() error = %v", err)
	}

	admin := actor("a1", model.RoleAdmin)
	super := actor("s1", model.RoleSuperAdmin)

	tcs := map[string]struct {
		actor gate.Actor
		ctx   map[string]any
		want  bool
	}{
		"admin may mint without target roles": {actor: admin, want: true},
		"admin may mint for a plain user":     {actor: admin, ctx: map[string]any{"targetRoles": []string{model.RoleUser}}, want: true},
		"admin may not mint for an admin":     {actor: admin, ctx: map[string]any{"targetRoles": []string{model.RoleAdmin}}, want: false},
		"super admin may mint for an admin":   {actor: super, ctx: map[string]any{"targetRoles": []string{model.RoleAdmin}}, want: true},
		"regular user cannot mint at all":     {actor: actor("u1", model.RoleUser), want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := g.Can(tc.actor, model.PermLoginTokenMint, tc.ctx); got != tc.want {
				t.Errorf("Can(mint) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPermissionTable_RoleReassignment(t *testing.T) {
	g, err := buildGate(nil)
	if err != nil {
		t.Fatalf("buildGate() error = %v", err)
	}

	admin := actor("a1", model.RoleAdmin)
	super := actor("s1", model.RoleSuperAdmin)

	tcs := map[string]struct {
		actor gate.Actor
		ctx   map[string]any
		want  bool
	}{
		"admin may assign plain roles":      {actor: admin, ctx: map[string]any{"targetRoles": []string{model.RoleUser}}, want: true},
		"admin may not touch admin roles":   {actor: admin, ctx: map[string]any{"targetRoles": []string{model.RoleAdmin}}, want: false},
		"super admin may touch admin roles": {actor: super, ctx: map[string]any{"targetRoles": []string{model.RoleAdmin}}, want: true},
		"regular user may not reassign":     {actor: actor("u1", model.RoleUser), ctx: map[string]any{"targetRoles": []string{model.RoleUser}}, want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := g.Can(tc.actor, model.PermUserReassign, tc.ctx); got != tc.want {
				t.Errorf("Can(reassign) = %v, want %v", got, tc.want)
			}
		})
	}
}
