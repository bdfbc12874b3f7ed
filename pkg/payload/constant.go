package payload

import "regexp"

// Registered claim names carried by issued tokens.
const (
	ClaimIssuer    = "iss"
	ClaimAudience  = "aud"
	ClaimSubject   = "sub"
	ClaimIssuedAt  = "iat"
	ClaimNotBefore = "nbf"
	ClaimExpiry    = "exp"
	ClaimTokenID   = "jti"

	// ClaimUser carries a public-safe snapshot of the authenticated user so
	// identity can be reconstructed without a store lookup per request.
	ClaimUser = "_user"
	// ClaimMethod records how the token was obtained.
	ClaimMethod = "method"
)

// Auth methods recorded under ClaimMethod.
const (
	MethodPassword  = "password"
	MethodSingleUse = "single_use"
)

// jtiPattern is the shape a token id must have: url-safe base64 alphabet,
// at least 8 characters.
var jtiPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{8,}$`)
