package gate

import "fmt"

// NodeType distinguishes role nodes from permission leaves.
type NodeType string

const (
	TypeRole       NodeType = "role"
	TypePermission NodeType = "permission"
)

// Node is one entry in the permission graph. A role grants everything
// reachable through its children, transitively.
type Node struct {
	Type        NodeType
	Description string
	RuleName    string
	Children    []string
}

// Table is the declarative permission tree registered at boot.
type Table map[string]Node

// Gate evaluates permission queries against an immutable graph. Built once
// at boot, safe for unsynchronized concurrent reads.
type Gate struct {
	table        Table
	rules        Registry
	defaultRoles []string
}

// Build validates the table and constructs the gate. It fails fast on
// unknown child references, unknown rule names, invalid node types,
// unknown default roles, and cyclic child edges.
func Build(table Table, rules Registry, defaultRoles []string) (*Gate, error) {
	for key, node := range table {
		if node.Type != TypeRole && node.Type != TypePermission {
			return nil, fmt.Errorf("%w: node %q has type %q", ErrInvalidNodeType, key, node.Type)
		}

		for _, child := range node.Children {
			if _, ok := table[child]; !ok {
				return nil, fmt.Errorf("%w: node %q references %q", ErrUnknownChild, key, child)
			}
		}

		if node.RuleName != "" {
			if _, ok := rules[node.RuleName]; !ok {
				return nil, fmt.Errorf("%w: node %q references %q", ErrUnknownRule, key, node.RuleName)
			}
		}
	}

	for _, role := range defaultRoles {
		if _, ok := table[role]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultRole, role)
		}
	}

	if err := detectCycles(table); err != nil {
		return nil, err
	}

	return &Gate{
		table:        table,
		rules:        rules,
		defaultRoles: append([]string(nil), defaultRoles...),
	}, nil
}

// Can answers "may this actor exercise the permission in this context".
// Default-deny: absence of a matching role, permission or rule denies.
func (g *Gate) Can(actor Actor, permission string, ctx map[string]any) bool {
	node, ok := g.table[permission]
	if !ok {
		return false
	}

	if !g.reachable(actor.Roles, permission) {
		return false
	}

	if node.RuleName != "" {
		return g.rules[node.RuleName].Allow(actor, ctx)
	}
	return true
}

// reachable walks the closure of the actor's roles plus the default roles,
// breadth-first with a visited set so a cyclic table cannot loop.
func (g *Gate) reachable(roles []string, permission string) bool {
	queue := make([]string, 0, len(roles)+len(g.defaultRoles))
	visited := make(map[string]bool)

	for _, key := range roles {
		if _, ok := g.table[key]; ok && !visited[key] {
			visited[key] = true
			queue = append(queue, key)
		}
	}
	for _, key := range g.defaultRoles {
		if !visited[key] {
			visited[key] = true
			queue = append(queue, key)
		}
	}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		if key == permission {
			return true
		}

		for _, child := range g.table[key].Children {
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}

	return false
}

// Describe returns a copy of the table for introspection endpoints.
func (g *Gate) Describe() Table {
	out := make(Table, len(g.table))
	for key, node := range g.table {
		node.Children = append([]string(nil), node.Children...)
		out[key] = node
	}
	return out
}

// DefaultRoles returns the roles every actor implicitly holds.
func (g *Gate) DefaultRoles() []string {
	return append([]string(nil), g.defaultRoles...)
}

// detectCycles runs a three-color DFS over the child edges.
func detectCycles(table Table) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(table))

	var visit func(key string) error
	visit = func(key string) error {
		color[key] = gray
		for _, child := range table[key].Children {
			switch color[child] {
			case gray:
				return fmt.Errorf("%w: %q -> %q", ErrCycleDetected, key, child)
			case white:
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		color[key] = black
		return nil
	}

	for key := range table {
		if color[key] == white {
			if err := visit(key); err != nil {
				return err
			}
		}
	}
	return nil
}
