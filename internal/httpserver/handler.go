package httpserver

import (
	articleHTTP "github.com/nglume/nglume/internal/article/delivery/http"
	articlePostgres "github.com/nglume/nglume/internal/article/repository/postgre"
	articleUsecase "github.com/nglume/nglume/internal/article/usecase"
	"github.com/nglume/nglume/internal/auth"
	authHTTP "github.com/nglume/nglume/internal/auth/delivery/http"
	authUsecase "github.com/nglume/nglume/internal/auth/usecase"
	"github.com/nglume/nglume/internal/middleware"
	"github.com/nglume/nglume/internal/model"
	tagHTTP "github.com/nglume/nglume/internal/tag/delivery/http"
	tagPostgres "github.com/nglume/nglume/internal/tag/repository/postgre"
	tagUsecase "github.com/nglume/nglume/internal/tag/usecase"
	"github.com/nglume/nglume/internal/user"
	userHTTP "github.com/nglume/nglume/internal/user/delivery/http"
	userPostgres "github.com/nglume/nglume/internal/user/repository/postgre"
	userUsecase "github.com/nglume/nglume/internal/user/usecase"
	"github.com/nglume/nglume/pkg/blacklist"
	"github.com/nglume/nglume/pkg/payload"
)

const api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Token pipeline
	factory := payload.NewFactory()
	validator := payload.NewValidator(srv.authCfg.RefreshGrace, nil)
	bl := blacklist.New(srv.redis, srv.authCfg.BlacklistClaim, nil)

	// Repositories & providers
	userRepo := userPostgres.New(srv.logger, srv.db)
	articleRepo := articlePostgres.New(srv.logger, srv.db)
	tagRepo := tagPostgres.New(srv.logger, srv.db)
	provider := user.NewProvider(userRepo)

	guardDeps := auth.GuardDeps{
		L:         srv.logger,
		Codec:     srv.codec,
		Validator: validator,
		Blacklist: bl,
		Provider:  provider,
	}
	mw := middleware.New(srv.logger, guardDeps, srv.gate, srv.cookieCfg.Name)

	// Usecases
	limiter := auth.NewAttemptLimiter(srv.logger, auth.DefaultRateLimitConfig())
	authUC := authUsecase.New(
		srv.logger, srv.codec, factory, validator, bl, provider, limiter, srv.gate,
		authUsecase.Config{TokenTTL: srv.authCfg.TokenTTL},
	)
	userUC := userUsecase.New(srv.logger, userRepo, srv.gate)
	articleUC := articleUsecase.New(srv.logger, articleRepo, srv.gate)
	tagUC := tagUsecase.New(srv.logger, tagRepo)

	// Routes
	apiGroup := srv.gin.Group(api)

	cookie := auth.CookieSettings{
		Name:           srv.cookieCfg.Name,
		Domain:         srv.cookieCfg.Domain,
		SameSite:       srv.cookieCfg.SameSite,
		Secure:         srv.cookieCfg.Secure,
		MaxAge:         srv.cookieCfg.MaxAge,
		MaxAgeRemember: srv.cookieCfg.MaxAgeRemember,
	}

	authHTTP.New(srv.logger, authUC, cookie).RegisterRoutes(apiGroup, mw.Auth(), mw.Can(model.PermLoginTokenMint, nil))
	userHTTP.New(srv.logger, userUC).RegisterRoutes(apiGroup, mw)
	articleHTTP.New(srv.logger, articleUC).RegisterRoutes(apiGroup, mw)
	tagHTTP.New(srv.logger, tagUC).RegisterRoutes(apiGroup, mw)

	apiGroup.GET("/roles", mw.Auth(), mw.Can(model.PermRoleList, nil), srv.listRoles)

	return nil
}
