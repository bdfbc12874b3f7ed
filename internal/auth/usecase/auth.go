package usecase

import (
	"context"
	"errors"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/payload"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.TokenOutput, error) {
	if !uc.limiter.Allow(ctx, ip.Email) {
		uc.secLog.RateLimited(ctx, ip.Email)
		return auth.TokenOutput{}, auth.ErrTooManyAttempts
	}

	g := auth.NewGuard(uc.guardDeps(), "", auth.SchemeBearer)
	if !g.Attempt(ctx, ip.Email, ip.Password) {
		uc.limiter.Record(ctx, ip.Email)
		uc.secLog.LoginFailure(ctx, ip.Email, "credentials rejected")
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}
	uc.limiter.Reset(ip.Email)

	u, err := g.User(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.User: %v", err)
		return auth.TokenOutput{}, err
	}

	return uc.mint(ctx, u, ip.Host, payload.MethodPassword, nil)
}

func (uc *usecase) Refresh(ctx context.Context, ip auth.RefreshInput) (auth.TokenOutput, error) {
	claims, err := uc.codec.Decode(ip.Token)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	p, err := payload.FromMap(claims)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	// Single-use tokens are spent through the Token scheme and never
	// refreshed; consumption deletes their registry entry, so a revocation
	// check alone would wave a spent one through.
	if method, err := p.String(payload.ClaimMethod); err == nil && method == payload.MethodSingleUse {
		return auth.TokenOutput{}, payload.ErrTokenExpired
	}

	revoked, err := uc.blacklist.Check(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.Check: %v", err)
		return auth.TokenOutput{}, err
	}
	if revoked {
		return auth.TokenOutput{}, payload.ErrTokenExpired
	}

	if err := uc.validator.ValidateForRefresh(p); err != nil {
		return auth.TokenOutput{}, err
	}

	sub, err := p.String(payload.ClaimSubject)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	// Reload the user so the refreshed snapshot picks up role changes.
	u, err := uc.provider.RetrieveByID(ctx, sub)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.RetrieveByID: %v", err)
		return auth.TokenOutput{}, err
	}

	method, err := p.String(payload.ClaimMethod)
	if err != nil {
		method = payload.MethodPassword
	}

	out, err := uc.mint(ctx, u, ip.Host, method, nil)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	// Revoke the old token for the remainder of its lifetime.
	if err := uc.blacklist.Add(ctx, p); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.Add: %v", err)
		return auth.TokenOutput{}, err
	}

	return out, nil
}

func (uc *usecase) Logout(ctx context.Context, token string) error {
	claims, err := uc.codec.Decode(token)
	if err != nil {
		return err
	}

	p, err := payload.FromMap(claims)
	if err != nil {
		return err
	}

	// Add is a no-op for tokens already past expiry, which keeps logout
	// idempotent.
	if err := uc.blacklist.Add(ctx, p); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.Add: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) MakeLoginToken(ctx context.Context, ip auth.MakeLoginTokenInput) (auth.TokenOutput, error) {
	u, err := uc.provider.RetrieveByID(ctx, ip.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.MakeLoginToken.RetrieveByID: %v", err)
		return auth.TokenOutput{}, err
	}

	// Admins may not mint tokens for other admins.
	if !uc.gate.Can(ip.Actor, model.PermLoginTokenMint, map[string]any{"targetRoles": []string(u.Roles)}) {
		return auth.TokenOutput{}, auth.ErrForbiddenTarget
	}

	out, p, err := uc.mintPayload(ctx, u, ip.Host, payload.MethodSingleUse, nil)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	// Register the token so resolution can consume it exactly once.
	if err := uc.blacklist.Add(ctx, p); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.MakeLoginToken.Add: %v", err)
		return auth.TokenOutput{}, err
	}

	return out, nil
}

func (uc *usecase) mint(ctx context.Context, u *model.User, host, method string, custom map[string]any) (auth.TokenOutput, error) {
	out, _, err := uc.mintPayload(ctx, u, host, method, custom)
	return out, err
}

func (uc *usecase) mintPayload(ctx context.Context, u *model.User, host, method string, custom map[string]any) (auth.TokenOutput, *payload.Payload, error) {
	gc := payload.GeneratorContext{
		UserID: u.ID,
		User:   u.ToClaim(),
		Host:   host,
		TTL:    uc.cfg.TokenTTL,
		Method: method,
		Now:    uc.clock(),
	}

	p, err := uc.factory.Create(gc, custom)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.mint.Create: %v", err)
		return auth.TokenOutput{}, nil, err
	}

	token, err := uc.codec.Encode(p.ToMap())
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.mint.Encode: %v", err)
		return auth.TokenOutput{}, nil, err
	}

	return auth.TokenOutput{
		Token:            token,
		DecodedTokenBody: p.ToMap(),
	}, p, nil
}
