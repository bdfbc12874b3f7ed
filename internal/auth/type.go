package auth

import "github.com/nglume/nglume/pkg/gate"

// Scheme is the Authorization header scheme a token arrived with.
type Scheme string

const (
	// SchemeBearer is the regular token scheme.
	SchemeBearer Scheme = "Bearer"
	// SchemeToken marks single-use tokens consumed on first resolution.
	SchemeToken Scheme = "Token"
)

type LoginInput struct {
	Email    string
	Password string
	// Host is the inbound request host, used to derive iss/aud.
	Host string
}

type RefreshInput struct {
	Token string
	Host  string
}

type MakeLoginTokenInput struct {
	UserID string
	Host   string
	// Actor is the requesting admin; impersonation limits are evaluated
	// against the target user's roles.
	Actor gate.Actor
}

// TokenOutput carries a freshly minted token plus its decoded body, so
// clients never need to parse the token themselves.
type TokenOutput struct {
	Token            string
	DecodedTokenBody map[string]any
}
