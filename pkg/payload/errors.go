package payload

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateClaim is returned when a payload is constructed with two
	// claims of the same name.
	ErrDuplicateClaim = errors.New("duplicate claim")
	// ErrClaimNotFound is returned when a requested claim is absent.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrClaimTypeMismatch is returned when a claim holds a value of an
	// unexpected type.
	ErrClaimTypeMismatch = errors.New("claim type mismatch")

	// ErrTokenExpired is returned when the payload's expiry has passed, or
	// when the token has been blacklisted or consumed. Both cases share one
	// taxonomy deliberately: the caller-visible remedy is identical.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenNotYetValid is returned when now is before the nbf claim.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)

// InvalidClaimError reports a claim that failed its validation rule, or a
// required claim missing at validation time. Claim names the offender.
type InvalidClaimError struct {
	Claim  string
	Reason string
}

func (e *InvalidClaimError) Error() string {
	return fmt.Sprintf("invalid claim %q: %s", e.Claim, e.Reason)
}

// GeneratorError wraps a claim generator failure; the factory aborts the
// whole build when any generator fails.
type GeneratorError struct {
	Claim string
	Err   error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("claim generator %q: %v", e.Claim, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}
