package payload

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

// GeneratorContext is what a claim generator sees: the authenticated user,
// the inbound request host, and static token config.
type GeneratorContext struct {
	UserID string
	// User is the public-safe snapshot embedded under the _user claim.
	User map[string]any
	// Host is the inbound request host, used to derive iss/aud.
	Host   string
	TTL    time.Duration
	Method string
	Now    time.Time
}

// Generator produces one claim value from the context.
type Generator interface {
	Generate(gc GeneratorContext) (any, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(gc GeneratorContext) (any, error)

func (f GeneratorFunc) Generate(gc GeneratorContext) (any, error) {
	return f(gc)
}

// Factory builds payloads by applying an ordered registry of named claim
// generators. Generators registered at boot may be overridden
// per-deployment before the factory is shared.
type Factory interface {
	// Register adds or replaces the generator for a claim name. Replacing
	// keeps the original position; adding appends.
	Register(name string, gen Generator)
	// Create runs every registered generator, then applies custom claims
	// (custom values replace generated ones of the same name). If any
	// generator fails, no payload is produced.
	Create(gc GeneratorContext, custom map[string]any) (*Payload, error)
}

type factoryImpl struct {
	order      []string
	generators map[string]Generator
}

// NewFactory returns a factory preloaded with the default generators:
// iss, aud, sub, iat, nbf, exp, jti, _user, method.
func NewFactory() Factory {
	f := &factoryImpl{generators: make(map[string]Generator)}

	f.Register(ClaimIssuer, GeneratorFunc(generateIssuer))
	f.Register(ClaimAudience, GeneratorFunc(generateAudience))
	f.Register(ClaimSubject, GeneratorFunc(generateSubject))
	f.Register(ClaimIssuedAt, GeneratorFunc(generateIssuedAt))
	f.Register(ClaimNotBefore, GeneratorFunc(generateNotBefore))
	f.Register(ClaimExpiry, GeneratorFunc(generateExpiry))
	f.Register(ClaimTokenID, GeneratorFunc(generateTokenID))
	f.Register(ClaimUser, GeneratorFunc(generateUser))
	f.Register(ClaimMethod, GeneratorFunc(generateMethod))

	return f
}

func (f *factoryImpl) Register(name string, gen Generator) {
	if _, ok := f.generators[name]; !ok {
		f.order = append(f.order, name)
	}
	f.generators[name] = gen
}

func (f *factoryImpl) Create(gc GeneratorContext, custom map[string]any) (*Payload, error) {
	claims := make([]Claim, 0, len(f.order)+len(custom))
	seen := make(map[string]int, len(f.order))

	for _, name := range f.order {
		value, err := f.generators[name].Generate(gc)
		if err != nil {
			return nil, &GeneratorError{Claim: name, Err: err}
		}

		seen[name] = len(claims)
		claims = append(claims, Claim{Name: name, Value: value})
	}

	for name, value := range custom {
		if i, ok := seen[name]; ok {
			claims[i].Value = value
			continue
		}
		claims = append(claims, Claim{Name: name, Value: value})
	}

	return New(claims...)
}

func generateIssuer(gc GeneratorContext) (any, error) {
	if gc.Host == "" {
		return nil, errors.New("request host is required")
	}
	return gc.Host, nil
}

// generateAudience derives the audience from the request host, stripping
// the api subdomain so tokens minted by api.example.com are addressed to
// example.com.
func generateAudience(gc GeneratorContext) (any, error) {
	if gc.Host == "" {
		return nil, errors.New("request host is required")
	}
	return strings.TrimPrefix(gc.Host, "api."), nil
}

func generateSubject(gc GeneratorContext) (any, error) {
	if gc.UserID == "" {
		return nil, errors.New("user id is required")
	}
	return gc.UserID, nil
}

func generateIssuedAt(gc GeneratorContext) (any, error) {
	return gc.Now.Unix(), nil
}

func generateNotBefore(gc GeneratorContext) (any, error) {
	return gc.Now.Unix(), nil
}

func generateExpiry(gc GeneratorContext) (any, error) {
	if gc.TTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return gc.Now.Add(gc.TTL).Unix(), nil
}

func generateTokenID(GeneratorContext) (any, error) {
	return NewTokenID()
}

func generateUser(gc GeneratorContext) (any, error) {
	if gc.User == nil {
		return nil, errors.New("user snapshot is required")
	}
	return gc.User, nil
}

func generateMethod(gc GeneratorContext) (any, error) {
	if gc.Method == "" {
		return MethodPassword, nil
	}
	return gc.Method, nil
}

// NewTokenID returns a fresh collision-resistant token id: 16 random bytes,
// url-safe base64 without padding.
func NewTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
