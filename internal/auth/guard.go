package auth

import (
	"context"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/blacklist"
	"github.com/nglume/nglume/pkg/jwt"
	pkgLog "github.com/nglume/nglume/pkg/log"
	"github.com/nglume/nglume/pkg/payload"
)

// GuardDeps are the shared dependencies a guard resolves tokens with.
// The deps are process-wide; the guard itself is built per request.
type GuardDeps struct {
	L         pkgLog.Logger
	Codec     jwt.Codec
	Validator payload.Validator
	Blacklist blacklist.Store
	Provider  UserProvider
}

type guardImpl struct {
	deps   GuardDeps
	token  string
	scheme Scheme

	// resolution memo: User() called twice must not re-decode the token
	resolved bool
	user     *model.User
	err      error
	scope    model.Scope
	viaToken bool
}

// NewGuard builds a request-scoped guard around the presented token. An
// empty token leaves the guard anonymous until Attempt or Login.
func NewGuard(deps GuardDeps, token string, scheme Scheme) Guard {
	return &guardImpl{deps: deps, token: token, scheme: scheme}
}

func (g *guardImpl) User(ctx context.Context) (*model.User, error) {
	if g.resolved {
		return g.user, g.err
	}

	u, sc, err := g.resolve(ctx)
	g.resolved = true
	if err != nil {
		g.err = err
		return nil, err
	}

	g.user = u
	g.scope = sc
	g.viaToken = true
	return u, nil
}

func (g *guardImpl) resolve(ctx context.Context) (*model.User, model.Scope, error) {
	if g.token == "" {
		return nil, model.Scope{}, ErrTokenRequired
	}

	claims, err := g.deps.Codec.Decode(g.token)
	if err != nil {
		return nil, model.Scope{}, err
	}

	p, err := payload.FromMap(claims)
	if err != nil {
		return nil, model.Scope{}, err
	}

	// Single-use tokens are consumed exactly once; everything else is
	// checked against the revocation list. A hit either way reads as
	// expiry to the caller.
	if g.scheme == SchemeToken {
		consumed, err := g.deps.Blacklist.Consume(ctx, p)
		if err != nil {
			g.deps.L.Errorf(ctx, "internal.auth.guard.resolve.Consume: %v", err)
			return nil, model.Scope{}, err
		}
		if !consumed {
			return nil, model.Scope{}, payload.ErrTokenExpired
		}
	} else {
		// A single-use token is bound to the Token scheme. Consuming it
		// removes its registry entry, so without this check a spent token
		// would pass the revocation lookup as a plain bearer token.
		if method, err := p.String(payload.ClaimMethod); err == nil && method == payload.MethodSingleUse {
			return nil, model.Scope{}, payload.ErrTokenExpired
		}

		revoked, err := g.deps.Blacklist.Check(ctx, p)
		if err != nil {
			g.deps.L.Errorf(ctx, "internal.auth.guard.resolve.Check: %v", err)
			return nil, model.Scope{}, err
		}
		if revoked {
			return nil, model.Scope{}, payload.ErrTokenExpired
		}
	}

	if err := g.deps.Validator.Validate(p); err != nil {
		return nil, model.Scope{}, err
	}

	u, err := g.reconstructUser(ctx, p)
	if err != nil {
		return nil, model.Scope{}, err
	}

	jti, _ := p.String(payload.ClaimTokenID)
	return u, model.NewScope(u, jti, true), nil
}

// reconstructUser prefers the _user snapshot carried by the token so the
// hot path needs no store round-trip, falling back to a lookup by subject.
func (g *guardImpl) reconstructUser(ctx context.Context, p *payload.Payload) (*model.User, error) {
	if raw, err := p.Get(payload.ClaimUser); err == nil {
		if snapshot, ok := raw.(map[string]any); ok {
			if u, err := model.UserFromClaim(snapshot); err == nil {
				return u, nil
			}
		}
	}

	sub, err := p.String(payload.ClaimSubject)
	if err != nil {
		return nil, err
	}

	u, err := g.deps.Provider.RetrieveByID(ctx, sub)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (g *guardImpl) Attempt(ctx context.Context, email, password string) bool {
	u, err := g.deps.Provider.RetrieveByEmail(ctx, email)
	if err != nil {
		// Unknown user and wrong password must be indistinguishable.
		return false
	}

	if !g.deps.Provider.ValidateCredentials(ctx, u, password) {
		return false
	}

	g.Login(u, false)
	return true
}

// Login marks the guard authenticated as u without a token. remember does
// not mint a longer-lived token; it only stretches the session cookie set
// by the HTTP layer, since every token carries the same configured TTL.
func (g *guardImpl) Login(u *model.User, remember bool) {
	g.resolved = true
	g.user = u
	g.err = nil
	g.viaToken = remember
	g.scope = model.NewScope(u, "", remember)
}

func (g *guardImpl) Logout() {
	g.resolved = false
	g.user = nil
	g.err = nil
	g.viaToken = false
	g.scope = model.Scope{}
}

func (g *guardImpl) Check() bool {
	return g.resolved && g.user != nil
}

func (g *guardImpl) ViaToken() bool {
	return g.viaToken
}

func (g *guardImpl) Scope() (model.Scope, bool) {
	if !g.Check() {
		return model.Scope{}, false
	}
	return g.scope, true
}
