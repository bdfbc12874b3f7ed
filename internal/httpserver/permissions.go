package httpserver

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/gate"
)

// Rule names referenced by permission nodes.
const (
	ruleManipulateWithOwn   = "manipulateWithOwn"
	ruleImpersonateNonAdmin = "impersonateNonAdmin"
	ruleReAssignNonAdmin    = "reAssignNonAdmin"
)

// permissionTable declares the role hierarchy and the permissions each
// role grants. Roles grant everything reachable through their children,
// so superAdmin inherits all of admin, and admin all of user.
func permissionTable() gate.Table {
	return gate.Table{
		model.RoleSuperAdmin: {
			Type:        gate.TypeRole,
			Description: "Super administrators",
			Children:    []string{model.RoleAdmin},
		},
		model.RoleAdmin: {
			Type:        gate.TypeRole,
			Description: "Administrators",
			Children: []string{
				model.RoleUser,
				model.PermUserList,
				model.PermUserCreate,
				model.PermUserDelete,
				model.PermUserReassign,
				model.PermTagCreate,
				model.PermTagDelete,
				model.PermRoleList,
				model.PermLoginTokenMint,
			},
		},
		model.RoleUser: {
			Type:        gate.TypeRole,
			Description: "Authenticated users",
			Children: []string{
				model.PermUserGetOne,
				model.PermUserUpdate,
				model.PermArticleList,
				model.PermArticleGetOne,
				model.PermArticleCreate,
				model.PermArticleUpdate,
				model.PermArticleDelete,
				model.PermTagList,
			},
		},

		model.PermUserList: {
			Type:        gate.TypePermission,
			Description: "List users",
		},
		model.PermUserGetOne: {
			Type:        gate.TypePermission,
			Description: "View a user profile",
			RuleName:    ruleManipulateWithOwn,
		},
		model.PermUserCreate: {
			Type:        gate.TypePermission,
			Description: "Create users",
		},
		model.PermUserUpdate: {
			Type:        gate.TypePermission,
			Description: "Update a user profile",
			RuleName:    ruleManipulateWithOwn,
		},
		model.PermUserDelete: {
			Type:        gate.TypePermission,
			Description: "Delete users",
		},
		model.PermUserReassign: {
			Type:        gate.TypePermission,
			Description: "Change a user's role assignments",
			RuleName:    ruleReAssignNonAdmin,
		},

		model.PermArticleList: {
			Type:        gate.TypePermission,
			Description: "List articles",
		},
		model.PermArticleGetOne: {
			Type:        gate.TypePermission,
			Description: "View an article",
		},
		model.PermArticleCreate: {
			Type:        gate.TypePermission,
			Description: "Create articles",
		},
		model.PermArticleUpdate: {
			Type:        gate.TypePermission,
			Description: "Update an article",
			RuleName:    ruleManipulateWithOwn,
		},
		model.PermArticleDelete: {
			Type:        gate.TypePermission,
			Description: "Delete an article",
			RuleName:    ruleManipulateWithOwn,
		},

		model.PermTagList: {
			Type:        gate.TypePermission,
			Description: "List tags",
		},
		model.PermTagCreate: {
			Type:        gate.TypePermission,
			Description: "Create tags",
		},
		model.PermTagDelete: {
			Type:        gate.TypePermission,
			Description: "Delete tags",
		},

		model.PermRoleList: {
			Type:        gate.TypePermission,
			Description: "List roles and permissions",
		},
		model.PermLoginTokenMint: {
			Type:        gate.TypePermission,
			Description: "Mint single-use login tokens for other users",
			RuleName:    ruleImpersonateNonAdmin,
		},
	}
}

// ruleRegistry binds rule names to their predicates.
func ruleRegistry() gate.Registry {
	return gate.Registry{
		// Admins may act on anyone; everyone else only on the resource
		// they own. The owner id arrives through the rule context.
		ruleManipulateWithOwn: gate.RuleFunc(func(actor gate.Actor, ctx map[string]any) bool {
			if actorIsAdmin(actor) {
				return true
			}
			owner, ok := ctx["userId"].(string)
			return ok && owner != "" && owner == actor.UserID
		}),

		// Admins may mint login tokens, but never for another admin.
		// Super admins are unrestricted. When the caller does not know
		// the target's roles yet, the usecase re-evaluates with them.
		ruleImpersonateNonAdmin: gate.RuleFunc(func(actor gate.Actor, ctx map[string]any) bool {
			if hasRole(actor, model.RoleSuperAdmin) {
				return true
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

		// Admins may change role assignments, but granting or revoking an
		// admin role takes a super admin. The usecase passes the union of
		// the old and new role sets as the target.
		ruleReAssignNonAdmin: gate.RuleFunc(func(actor gate.Actor, ctx map[string]any) bool {
			if hasRole(actor, model.RoleSuperAdmin) {
				return true
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
}

func actorIsAdmin(actor gate.Actor) bool {
	return hasRole(actor, model.RoleAdmin) || hasRole(actor, model.RoleSuperAdmin)
}

func hasRole(actor gate.Actor, role string) bool {
	for _, r := range actor.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// buildGate constructs the access control gate from the static table.
// A malformed table is a programming error and fails boot.
func buildGate(defaultRoles []string) (*gate.Gate, error) {
	return gate.Build(permissionTable(), ruleRegistry(), defaultRoles)
}
