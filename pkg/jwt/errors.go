package jwt

import "errors"

var (
	// ErrMalformedToken is returned when the token does not have exactly
	// three non-empty dot-separated segments.
	ErrMalformedToken = errors.New("malformed token")
	// ErrSignatureInvalid is returned when the token signature does not verify.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrUnsupportedAlgorithm is returned when the token header names an
	// algorithm other than the configured one.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	ErrSecretRequired     = errors.New("signing secret is required")
	ErrPrivateKeyRequired = errors.New("RSA private key is required")
	ErrPublicKeyRequired  = errors.New("RSA public key is required")
)
