package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/nglume/nglume/config"
	"github.com/nglume/nglume/pkg/discord"
	"github.com/nglume/nglume/pkg/gate"
	"github.com/nglume/nglume/pkg/jwt"
	pkgLog "github.com/nglume/nglume/pkg/log"
	pkgRedis "github.com/nglume/nglume/pkg/redis"
)

// HTTPServer wires the REST API together. New() only builds and
// validates the dependency graph; Run() starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger pkgLog.Logger
	host   string
	port   int

	// Auth & security
	codec     jwt.Codec
	gate      *gate.Gate
	authCfg   config.AuthConfig
	cookieCfg config.CookieConfig

	// External services
	db      *sqlx.DB
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	Codec   jwt.Codec
	Auth    config.AuthConfig
	Cookie  config.CookieConfig
	DB      *sqlx.DB
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates the server and builds the access control gate. It does not
// start any goroutines; use Run().
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	g, err := buildGate(cfg.Auth.DefaultRoles)
	if err != nil {
		return nil, err
	}

	srv := &HTTPServer{
		gin:       gin.New(),
		logger:    logger,
		host:      cfg.Host,
		port:      cfg.Port,
		codec:     cfg.Codec,
		gate:      g,
		authCfg:   cfg.Auth,
		cookieCfg: cfg.Cookie,
		db:        cfg.DB,
		redis:     cfg.Redis,
		discord:   cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.codec == nil {
		return errors.New("token codec is required")
	}
	if srv.db == nil {
		return errors.New("database handle is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}

	return nil
}
