package payload

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		claims  []Claim
		wantErr error
	}{
		{
			name: "valid claims",
			claims: []Claim{
				{Name: ClaimSubject, Value: "user-1"},
				{Name: ClaimExpiry, Value: int64(1700000000)},
				{Name: ClaimTokenID, Value: "abcdefgh"},
			},
		},
		{
			name: "duplicate claim name",
			claims: []Claim{
				{Name: ClaimSubject, Value: "user-1"},
				{Name: ClaimSubject, Value: "user-2"},
			},
			wantErr: ErrDuplicateClaim,
		},
		{
			name:    "empty subject",
			claims:  []Claim{{Name: ClaimSubject, Value: ""}},
			wantErr: &InvalidClaimError{},
		},
		{
			name:    "non-integer expiry",
			claims:  []Claim{{Name: ClaimExpiry, Value: "soon"}},
			wantErr: &InvalidClaimError{},
		},
		{
			name:    "fractional expiry",
			claims:  []Claim{{Name: ClaimExpiry, Value: 1700000000.5}},
			wantErr: &InvalidClaimError{},
		},
		{
			name:    "short token id",
			claims:  []Claim{{Name: ClaimTokenID, Value: "abc"}},
			wantErr: &InvalidClaimError{},
		},
		{
			name:    "token id with invalid characters",
			claims:  []Claim{{Name: ClaimTokenID, Value: "abc def=="}},
			wantErr: &InvalidClaimError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.claims...)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			var invalid *InvalidClaimError
			if _, want := tt.wantErr.(*InvalidClaimError); want {
				if !errors.As(err, &invalid) {
					t.Errorf("New() error = %v, want InvalidClaimError", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPayload_OrderPreserved(t *testing.T) {
	p, err := New(
		Claim{Name: "b", Value: 1},
		Claim{Name: "a", Value: 2},
		Claim{Name: "c", Value: 3},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := p.Claims()
	want := []string{"b", "a", "c"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Claims()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFromMap_OrderedLexicographically(t *testing.T) {
	p, err := FromMap(map[string]any{
		"sub": "user-1",
		"aud": "example.com",
		"iss": "api.example.com",
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	got := p.Claims()
	want := []string{"aud", "iss", "sub"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Claims()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestPayload_Accessors(t *testing.T) {
	p, err := New(
		Claim{Name: ClaimSubject, Value: "user-1"},
		Claim{Name: ClaimExpiry, Value: float64(1700000000)},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("string claim", func(t *testing.T) {
		got, err := p.String(ClaimSubject)
		if err != nil {
			t.Fatalf("String() error = %v", err)
		}
		if got != "user-1" {
			t.Errorf("String() = %q, want %q", got, "user-1")
		}
	})

	t.Run("integral float decodes as int64", func(t *testing.T) {
		got, err := p.Int64(ClaimExpiry)
		if err != nil {
			t.Fatalf("Int64() error = %v", err)
		}
		if got != 1700000000 {
			t.Errorf("Int64() = %d, want %d", got, 1700000000)
		}
	})

	t.Run("missing claim", func(t *testing.T) {
		if _, err := p.Get("nope"); !errors.Is(err, ErrClaimNotFound) {
			t.Errorf("Get() error = %v, want ErrClaimNotFound", err)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		if _, err := p.Int64(ClaimSubject); !errors.Is(err, ErrClaimTypeMismatch) {
			t.Errorf("Int64() error = %v, want ErrClaimTypeMismatch", err)
		}
	})
}
