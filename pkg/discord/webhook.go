package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

type webhookPayload struct {
	Content string `json:"content"`
}

// ReportBug posts an error report message to the configured webhook.
// Transient failures are retried up to MaxRetries times.
func (d *Discord) ReportBug(ctx context.Context, message string) error {
	if message == "" {
		return nil
	}

	body, err := json.Marshal(webhookPayload{Content: message})
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)

	var lastErr error
	for attempt := 0; attempt <= d.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		lastErr = d.post(ctx, url, body)
		if lastErr == nil {
			return nil
		}
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.ReportBug attempt %d failed: %v", attempt+1, lastErr)
		}
	}

	return lastErr
}

func (d *Discord) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord: webhook returned %d: %s", resp.StatusCode, string(msg))
	}

	return nil
}
