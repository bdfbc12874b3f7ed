package main

import (
	"context"
	"fmt"

	"github.com/nglume/nglume/config"
	configPostgre "github.com/nglume/nglume/config/postgre"
	configRedis "github.com/nglume/nglume/config/redis"
	"github.com/nglume/nglume/internal/httpserver"
	"github.com/nglume/nglume/pkg/discord"
	"github.com/nglume/nglume/pkg/jwt"
	"github.com/nglume/nglume/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// PostgreSQL
	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Redis - token blacklist backend
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// Token codec
	codecCfg, err := cfg.JWT.CodecConfig()
	if err != nil {
		logger.Errorf(ctx, "Failed to load signing configuration: %v", err)
		return
	}
	codec, err := jwt.New(codecCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize token codec: %v", err)
		return
	}

	// Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		dc, err := discord.New(logger, &discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			discordClient = dc
		}
	}

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		Codec:   codec,
		Auth:    cfg.Auth,
		Cookie:  cfg.Cookie,
		DB:      db,
		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
