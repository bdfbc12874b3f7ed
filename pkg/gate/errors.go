package gate

import "errors"

var (
	// ErrUnknownChild is returned at build time when a node references a
	// child key that does not exist in the table.
	ErrUnknownChild = errors.New("unknown child reference")
	// ErrUnknownRule is returned at build time when a node names a rule
	// that is not registered.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrUnknownDefaultRole is returned when a configured default role does
	// not exist in the table.
	ErrUnknownDefaultRole = errors.New("unknown default role")
	// ErrInvalidNodeType is returned when a node's type is neither role nor
	// permission.
	ErrInvalidNodeType = errors.New("invalid node type")
	// ErrCycleDetected is returned when the child edges do not form a DAG.
	ErrCycleDetected = errors.New("cycle detected in permission table")
)
