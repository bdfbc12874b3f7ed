package gate

import (
	"errors"
	"testing"
)

func testTable() Table {
	return Table{
		"superAdmin": {Type: TypeRole, Children: []string{"admin"}},
		"admin":      {Type: TypeRole, Children: []string{"user", "user.delete"}},
		"user":       {Type: TypeRole, Children: []string{"article.read", "article.update"}},

		"user.delete":  {Type: TypePermission},
		"article.read": {Type: TypePermission},
		"article.update": {
			Type:     TypePermission,
			RuleName: "own",
		},
	}
}

func testRules() Registry {
	return Registry{
		"own": RuleFunc(func(actor Actor, ctx map[string]any) bool {
			owner, ok := ctx["userId"].(string)
			return ok && owner == actor.UserID
		}),
	}
}

func TestGate_Can(t *testing.T) {
	g, err := Build(testTable(), testRules(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name       string
		actor      Actor
		permission string
		ctx        map[string]any
		want       bool
	}{
		{
			name:       "direct grant",
			actor:      Actor{UserID: "u1", Roles: []string{"user"}},
			permission: "article.read",
			want:       true,
		},
		{
			name:       "transitive grant through role hierarchy",
			actor:      Actor{UserID: "u1", Roles: []string{"superAdmin"}},
			permission: "article.read",
			want:       true,
		},
		{
			name:       "role without the grant",
			actor:      Actor{UserID: "u1", Roles: []string{"user"}},
			permission: "user.delete",
			want:       false,
		},
		{
			name:       "unknown permission denies",
			actor:      Actor{UserID: "u1", Roles: []string{"superAdmin"}},
			permission: "nuclear.launch",
			want:       false,
		},
		{
			name:       "unknown role denies",
			actor:      Actor{UserID: "u1", Roles: []string{"ghost"}},
			permission: "article.read",
			want:       false,
		},
		{
			name:       "no roles denies",
			actor:      Actor{UserID: "u1"},
			permission: "article.read",
			want:       false,
		},
		{
			name:       "rule passes for owner",
			actor:      Actor{UserID: "u1", Roles: []string{"user"}},
			permission: "article.update",
			ctx:        map[string]any{"userId": "u1"},
			want:       true,
		},
		{
			name:       "rule denies for non-owner",
			actor:      Actor{UserID: "u1", Roles: []string{"user"}},
			permission: "article.update",
			ctx:        map[string]any{"userId": "u2"},
			want:       false,
		},
		{
			name:       "rule denies without context",
			actor:      Actor{UserID: "u1", Roles: []string{"user"}},
			permission: "article.update",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Can(tt.actor, tt.permission, tt.ctx); got != tt.want {
				t.Errorf("Can(%q) = %v, want %v", tt.permission, got, tt.want)
			}
		})
	}
}

func TestGate_DefaultRoles(t *testing.T) {
	g, err := Build(testTable(), testRules(), []string{"user"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// An actor with no roles still holds the default role's grants.
	actor := Actor{UserID: "u1"}
	if !g.Can(actor, "article.read", nil) {
		t.Error("Can(article.read) = false with default role user")
	}
	if g.Can(actor, "user.delete", nil) {
		t.Error("Can(user.delete) = true, default role must not escalate")
	}
}

func TestBuild_Failures(t *testing.T) {
	tests := []struct {
		name         string
		table        Table
		rules        Registry
		defaultRoles []string
		wantErr      error
	}{
		{
			name: "unknown child",
			table: Table{
				"user": {Type: TypeRole, Children: []string{"missing"}},
			},
			wantErr: ErrUnknownChild,
		},
		{
			name: "unknown rule",
			table: Table{
				"article.update": {Type: TypePermission, RuleName: "missing"},
			},
			wantErr: ErrUnknownRule,
		},
		{
			name: "invalid node type",
			table: Table{
				"user": {Type: NodeType("group")},
			},
			wantErr: ErrInvalidNodeType,
		},
		{
			name:         "unknown default role",
			table:        Table{"user": {Type: TypeRole}},
			defaultRoles: []string{"ghost"},
			wantErr:      ErrUnknownDefaultRole,
		},
		{
			name: "cycle",
			table: Table{
				"a": {Type: TypeRole, Children: []string{"b"}},
				"b": {Type: TypeRole, Children: []string{"c"}},
				"c": {Type: TypeRole, Children: []string{"a"}},
			},
			wantErr: ErrCycleDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.table, tt.rules, tt.defaultRoles)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGate_CanSurvivesCyclicLookupShape(t *testing.T) {
	// Two roles granting the same permission must not loop the BFS.
	table := Table{
		"a":    {Type: TypeRole, Children: []string{"perm"}},
		"b":    {Type: TypeRole, Children: []string{"perm"}},
		"perm": {Type: TypePermission},
	}
	g, err := Build(table, nil, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !g.Can(Actor{UserID: "u1", Roles: []string{"a", "b"}}, "perm", nil) {
		t.Error("Can(perm) = false, want true")
	}
}
