package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nglume/nglume/pkg/log"
)

// IDiscord sends operational messages to a Discord channel via webhook.
type IDiscord interface {
	// ReportBug posts an error report message to the configured webhook.
	ReportBug(ctx context.Context, message string) error
}

// Webhook contains webhook information for the Discord API.
type Webhook struct {
	ID    string
	Token string
}

// Config holds HTTP client settings for the Discord webhook client.
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns sensible client defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Discord is the webhook-backed IDiscord implementation.
type Discord struct {
	l       log.Logger
	webhook *Webhook
	config  Config
	client  *http.Client
}

// New creates a new Discord client with the provided logger and webhook.
func New(l log.Logger, webhook *Webhook) (*Discord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errors.New("discord: webhook ID and token are required")
	}

	config := DefaultConfig()
	client := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	return &Discord{
		l:       l,
		webhook: webhook,
		config:  config,
		client:  client,
	}, nil
}
