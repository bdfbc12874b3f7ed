package gate

// Actor is the identity a permission query runs against.
type Actor struct {
	UserID string
	Roles  []string
}

// Rule is a dynamic predicate attached to a node; the node only grants
// when the rule allows the actor in the given context.
type Rule interface {
	Allow(actor Actor, ctx map[string]any) bool
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(actor Actor, ctx map[string]any) bool

func (f RuleFunc) Allow(actor Actor, ctx map[string]any) bool {
	return f(actor, ctx)
}

// Registry maps rule names to predicates. Built once at boot.
type Registry map[string]Rule
