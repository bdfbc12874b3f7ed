package payload

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Claim is a single named fact embedded in a token.
type Claim struct {
	Name  string
	Value any
}

// Payload is an ordered, key-unique collection of claims. Immutable once
// built; a refresh produces a new Payload rather than mutating this one.
type Payload struct {
	claims []Claim
	index  map[string]int
}

// New constructs a payload from the given claims in order. Constructing
// with a duplicate claim name fails with ErrDuplicateClaim; a claim that
// fails its built-in validation rule fails with InvalidClaimError.
func New(claims ...Claim) (*Payload, error) {
	p := &Payload{
		claims: make([]Claim, 0, len(claims)),
		index:  make(map[string]int, len(claims)),
	}

	for _, c := range claims {
		if _, ok := p.index[c.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClaim, c.Name)
		}

		if err := validateClaim(c); err != nil {
			return nil, err
		}

		p.index[c.Name] = len(p.claims)
		p.claims = append(p.claims, c)
	}

	return p, nil
}

// FromMap builds a payload from a decoded claim map. Keys are ordered
// lexicographically for determinism.
func FromMap(m map[string]any) (*Payload, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	claims := make([]Claim, 0, len(names))
	for _, name := range names {
		claims = append(claims, Claim{Name: name, Value: m[name]})
	}

	return New(claims...)
}

// Has reports whether the named claim is present.
func (p *Payload) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Get returns the named claim value, or ErrClaimNotFound.
func (p *Payload) Get(name string) (any, error) {
	i, ok := p.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClaimNotFound, name)
	}
	return p.claims[i].Value, nil
}

// String returns the named claim as a string.
func (p *Payload) String(name string) (string, error) {
	v, err := p.Get(name)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrClaimTypeMismatch, name, v)
	}
	return s, nil
}

// Int64 returns the named claim as an int64. JSON decoding yields float64
// for numbers, so integral floats are accepted.
func (p *Payload) Int64(name string) (int64, error) {
	v, err := p.Get(name)
	if err != nil {
		return 0, err
	}

	n, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T, want integer", ErrClaimTypeMismatch, name, v)
	}
	return n, nil
}

// Claims returns the claims in construction order.
func (p *Payload) Claims() []Claim {
	out := make([]Claim, len(p.claims))
	copy(out, p.claims)
	return out
}

// ToMap flattens the payload into the claim map handed to the token codec.
func (p *Payload) ToMap() map[string]any {
	m := make(map[string]any, len(p.claims))
	for _, c := range p.claims {
		m[c.Name] = c.Value
	}
	return m
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// validateClaim applies the built-in per-claim validation rules.
func validateClaim(c Claim) error {
	switch c.Name {
	case ClaimExpiry, ClaimNotBefore, ClaimIssuedAt:
		if _, ok := toInt64(c.Value); !ok {
			return &InvalidClaimError{Claim: c.Name, Reason: "must be an integer timestamp"}
		}
	case ClaimSubject:
		s, ok := c.Value.(string)
		if !ok || s == "" {
			return &InvalidClaimError{Claim: c.Name, Reason: "must be a non-empty string"}
		}
	case ClaimTokenID:
		s, ok := c.Value.(string)
		if !ok || !jtiPattern.MatchString(s) {
			return &InvalidClaimError{Claim: c.Name, Reason: "must match the token id pattern"}
		}
	}
	return nil
}
