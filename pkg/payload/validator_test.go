package payload

import (
	"errors"
	"testing"
	"time"
)

func validClaims(now time.Time, ttl time.Duration) map[string]any {
	return map[string]any{
		ClaimIssuer:    "api.example.com",
		ClaimAudience:  "example.com",
		ClaimSubject:   "user-1",
		ClaimIssuedAt:  now.Unix(),
		ClaimNotBefore: now.Unix(),
		ClaimExpiry:    now.Add(ttl).Unix(),
		ClaimTokenID:   "abcdefgh12345678",
	}
}

func TestValidator_Validate(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := func() time.Time { return now }

	tests := []struct {
		name    string
		mutate  func(m map[string]any)
		wantErr error
	}{
		{
			name:   "fresh token",
			mutate: func(map[string]any) {},
		},
		{
			name: "expired token",
			mutate: func(m map[string]any) {
				m[ClaimExpiry] = now.Add(-time.Second).Unix()
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "expiry exactly now",
			mutate: func(m map[string]any) {
				m[ClaimExpiry] = now.Unix()
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "not yet valid",
			mutate: func(m map[string]any) {
				m[ClaimNotBefore] = now.Add(time.Minute).Unix()
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "missing required claim",
			mutate: func(m map[string]any) {
				delete(m, ClaimTokenID)
			},
			wantErr: &InvalidClaimError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validClaims(now, time.Hour)
			tt.mutate(m)

			p, err := FromMap(m)
			if err != nil {
				t.Fatalf("FromMap() error = %v", err)
			}

			err = NewValidator(0, clock).Validate(p)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if _, want := tt.wantErr.(*InvalidClaimError); want {
				var invalid *InvalidClaimError
				if !errors.As(err, &invalid) {
					t.Errorf("Validate() error = %v, want InvalidClaimError", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateForRefresh(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := func() time.Time { return now }
	grace := 14 * 24 * time.Hour

	tests := []struct {
		name    string
		expiry  time.Time
		wantErr error
	}{
		{
			name:   "expired but inside grace window",
			expiry: now.Add(-time.Hour),
		},
		{
			name:   "one second before grace runs out",
			expiry: now.Add(-grace).Add(time.Second),
		},
		{
			name:    "grace window exactly exhausted",
			expiry:  now.Add(-grace),
			wantErr: ErrTokenExpired,
		},
		{
			name:    "long past the grace window",
			expiry:  now.Add(-grace).Add(-time.Hour),
			wantErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validClaims(now.Add(-2*time.Hour), time.Hour)
			m[ClaimExpiry] = tt.expiry.Unix()

			p, err := FromMap(m)
			if err != nil {
				t.Fatalf("FromMap() error = %v", err)
			}

			err = NewValidator(grace, clock).ValidateForRefresh(p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForRefresh() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
