package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nglume/nglume/pkg/jwt"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	Server ServerConfig
	Logger LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Auth   AuthConfig
	Cookie CookieConfig

	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the signing configuration for issued tokens.
type JWTConfig struct {
	Algorithm      string
	SecretKey      string
	PrivateKeyPath string
	PublicKeyPath  string
}

// AuthConfig is the configuration for token lifetime and authorization.
type AuthConfig struct {
	TokenTTL       time.Duration
	RefreshGrace   time.Duration
	BlacklistClaim string
	DefaultRoles   []string
}

// CookieConfig is the configuration for HttpOnly cookie authentication.
type CookieConfig struct {
	Domain         string
	Secure         bool
	SameSite       string
	MaxAge         int
	MaxAgeRemember int
	Name           string
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("nglume-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/nglume/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.PrivateKeyPath = viper.GetString("jwt.private_key_path")
	cfg.JWT.PublicKeyPath = viper.GetString("jwt.public_key_path")

	// Auth
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.RefreshGrace = viper.GetDuration("auth.refresh_grace")
	cfg.Auth.BlacklistClaim = viper.GetString("auth.blacklist_claim")
	cfg.Auth.DefaultRoles = viper.GetStringSlice("auth.default_roles")

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.SameSite = viper.GetString("cookie.samesite")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")
	cfg.Cookie.MaxAgeRemember = viper.GetInt("cookie.max_age_remember")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "")
	viper.SetDefault("postgres.dbname", "nglume")
	viper.SetDefault("postgres.sslmode", "disable")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// JWT
	viper.SetDefault("jwt.algorithm", jwt.AlgorithmHS256)

	// Auth
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("auth.refresh_grace", 14*24*time.Hour)
	viper.SetDefault("auth.blacklist_claim", "jti")
	viper.SetDefault("auth.default_roles", []string{"user"})

	// Cookie
	viper.SetDefault("cookie.domain", "")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.samesite", "Lax")
	viper.SetDefault("cookie.max_age", 3600)
	viper.SetDefault("cookie.max_age_remember", 2592000)
	viper.SetDefault("cookie.name", "nglume_auth_token")
}

func validate(cfg *Config) error {
	switch cfg.JWT.Algorithm {
	case jwt.AlgorithmHS256:
		if cfg.JWT.SecretKey == "" {
			return fmt.Errorf("jwt.secret_key is required")
		}
		if len(cfg.JWT.SecretKey) < 32 {
			return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
		}
	case jwt.AlgorithmRS256:
		if cfg.JWT.PrivateKeyPath == "" || cfg.JWT.PublicKeyPath == "" {
			return fmt.Errorf("jwt.private_key_path and jwt.public_key_path are required for RS256")
		}
	default:
		return fmt.Errorf("jwt.algorithm %q is not supported", cfg.JWT.Algorithm)
	}

	if cfg.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if cfg.Auth.RefreshGrace < 0 {
		return fmt.Errorf("auth.refresh_grace must not be negative")
	}
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}

	if cfg.Cookie.Name == "" {
		return fmt.Errorf("cookie.name is required")
	}

	return nil
}

// CodecConfig materializes the signing configuration, reading RSA key
// material from disk when RS256 is configured.
func (c JWTConfig) CodecConfig() (jwt.Config, error) {
	cfg := jwt.Config{
		Algorithm: c.Algorithm,
		Secret:    c.SecretKey,
	}

	if c.Algorithm == jwt.AlgorithmRS256 {
		priv, err := os.ReadFile(c.PrivateKeyPath)
		if err != nil {
			return jwt.Config{}, fmt.Errorf("failed to read private key: %w", err)
		}

		pub, err := os.ReadFile(c.PublicKeyPath)
		if err != nil {
			return jwt.Config{}, fmt.Errorf("failed to read public key: %w", err)
		}

		cfg.PrivateKeyPEM = priv
		cfg.PublicKeyPEM = pub
	}

	return cfg, nil
}
