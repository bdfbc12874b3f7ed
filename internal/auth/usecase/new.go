package usecase

import (
	"time"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/pkg/blacklist"
	"github.com/nglume/nglume/pkg/gate"
	"github.com/nglume/nglume/pkg/jwt"
	pkgLog "github.com/nglume/nglume/pkg/log"
	"github.com/nglume/nglume/pkg/payload"
)

// Config holds token issuance settings for the auth usecase.
type Config struct {
	TokenTTL time.Duration
}

type usecase struct {
	l         pkgLog.Logger
	codec     jwt.Codec
	factory   payload.Factory
	validator payload.Validator
	blacklist blacklist.Store
	provider  auth.UserProvider
	limiter   *auth.AttemptLimiter
	gate      *gate.Gate
	secLog    *auth.SecurityLogger
	cfg       Config
	clock     func() time.Time
}

func New(
	l pkgLog.Logger,
	codec jwt.Codec,
	factory payload.Factory,
	validator payload.Validator,
	bl blacklist.Store,
	provider auth.UserProvider,
	limiter *auth.AttemptLimiter,
	g *gate.Gate,
	cfg Config,
) auth.UseCase {
	return &usecase{
		l:         l,
		codec:     codec,
		factory:   factory,
		validator: validator,
		blacklist: bl,
		provider:  provider,
		limiter:   limiter,
		gate:      g,
		secLog:    auth.NewSecurityLogger(l),
		cfg:       cfg,
		clock:     time.Now,
	}
}

func (uc *usecase) guardDeps() auth.GuardDeps {
	return auth.GuardDeps{
		L:         uc.l,
		Codec:     uc.codec,
		Validator: uc.validator,
		Blacklist: uc.blacklist,
		Provider:  uc.provider,
	}
}
