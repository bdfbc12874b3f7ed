package payload

import (
	"errors"
	"testing"
	"time"
)

func testGeneratorContext() GeneratorContext {
	return GeneratorContext{
		UserID: "user-1",
		User:   map[string]any{"id": "user-1", "email": "jo@example.com"},
		Host:   "api.example.com",
		TTL:    time.Hour,
		Method: MethodPassword,
		Now:    time.Unix(1700000000, 0),
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory()

	p, err := f.Create(testGeneratorContext(), nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("issuer is the request host", func(t *testing.T) {
		iss, _ := p.String(ClaimIssuer)
		if iss != "api.example.com" {
			t.Errorf("iss = %q, want %q", iss, "api.example.com")
		}
	})

	t.Run("audience strips the api subdomain", func(t *testing.T) {
		aud, _ := p.String(ClaimAudience)
		if aud != "example.com" {
			t.Errorf("aud = %q, want %q", aud, "example.com")
		}
	})

	t.Run("expiry is now plus ttl", func(t *testing.T) {
		exp, _ := p.Int64(ClaimExpiry)
		if exp != 1700000000+3600 {
			t.Errorf("exp = %d, want %d", exp, 1700000000+3600)
		}
	})

	t.Run("token id matches the jti pattern", func(t *testing.T) {
		jti, err := p.String(ClaimTokenID)
		if err != nil {
			t.Fatalf("jti missing: %v", err)
		}
		if !jtiPattern.MatchString(jti) {
			t.Errorf("jti = %q does not match pattern", jti)
		}
	})

	t.Run("user snapshot embedded", func(t *testing.T) {
		if !p.Has(ClaimUser) {
			t.Error("payload missing _user claim")
		}
	})
}

func TestFactory_Create_CustomClaims(t *testing.T) {
	f := NewFactory()

	p, err := f.Create(testGeneratorContext(), map[string]any{
		ClaimMethod: MethodSingleUse,
		"tenant":    "acme",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	method, _ := p.String(ClaimMethod)
	if method != MethodSingleUse {
		t.Errorf("method = %q, want %q", method, MethodSingleUse)
	}
	tenant, _ := p.String("tenant")
	if tenant != "acme" {
		t.Errorf("tenant = %q, want %q", tenant, "acme")
	}

	// Custom values replace in place, never duplicate.
	count := 0
	for _, c := range p.Claims() {
		if c.Name == ClaimMethod {
			count++
		}
	}
	if count != 1 {
		t.Errorf("method claim appears %d times, want 1", count)
	}
}

func TestFactory_Create_GeneratorFailureIsAtomic(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(gc *GeneratorContext)
		claim  string
	}{
		{"missing host", func(gc *GeneratorContext) { gc.Host = "" }, ClaimIssuer},
		{"missing user id", func(gc *GeneratorContext) { gc.UserID = "" }, ClaimSubject},
		{"missing user snapshot", func(gc *GeneratorContext) { gc.User = nil }, ClaimUser},
		{"non-positive ttl", func(gc *GeneratorContext) { gc.TTL = 0 }, ClaimExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory()
			gc := testGeneratorContext()
			tt.mutate(&gc)

			p, err := f.Create(gc, nil)
			if p != nil {
				t.Error("Create() returned a payload alongside an error")
			}

			var genErr *GeneratorError
			if !errors.As(err, &genErr) {
				t.Fatalf("Create() error = %v, want GeneratorError", err)
			}
			if genErr.Claim != tt.claim {
				t.Errorf("GeneratorError.Claim = %q, want %q", genErr.Claim, tt.claim)
			}
		})
	}
}

func TestFactory_Register_ReplaceKeepsPosition(t *testing.T) {
	f := NewFactory()
	f.Register(ClaimIssuer, GeneratorFunc(func(GeneratorContext) (any, error) {
		return "static-issuer", nil
	}))

	p, err := f.Create(testGeneratorContext(), nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got := p.Claims()[0].Name; got != ClaimIssuer {
		t.Errorf("first claim = %q, want %q", got, ClaimIssuer)
	}
	iss, _ := p.String(ClaimIssuer)
	if iss != "static-issuer" {
		t.Errorf("iss = %q, want %q", iss, "static-issuer")
	}
}

func TestNewTokenID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewTokenID()
		if err != nil {
			t.Fatalf("NewTokenID() error = %v", err)
		}
		if !jtiPattern.MatchString(id) {
			t.Fatalf("NewTokenID() = %q does not match pattern", id)
		}
		if seen[id] {
			t.Fatalf("NewTokenID() repeated %q", id)
		}
		seen[id] = true
	}
}
