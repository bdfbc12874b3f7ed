package auth

import (
	"context"
	"time"

	pkgLog "github.com/nglume/nglume/pkg/log"
)

// SecurityEventType represents the type of security event.
type SecurityEventType string

const (
	SecurityEventLoginFailure      SecurityEventType = "login_failure"
	SecurityEventTokenRejected     SecurityEventType = "token_rejected"
	SecurityEventPermissionDenied  SecurityEventType = "permission_denied"
	SecurityEventRateLimitExceeded SecurityEventType = "rate_limit_exceeded"
)

// SecurityEvent represents a security-relevant event worth an audit trail.
type SecurityEvent struct {
	Type       SecurityEventType `json:"type"`
	UserID     string            `json:"user_id,omitempty"`
	Email      string            `json:"email,omitempty"`
	Permission string            `json:"permission,omitempty"`
	Path       string            `json:"path,omitempty"`
	Reason     string            `json:"reason"`
	Timestamp  time.Time         `json:"timestamp"`
}

// SecurityLogger writes structured security events through the service
// logger so they can be filtered downstream by event type.
type SecurityLogger struct {
	logger pkgLog.Logger
	clock  func() time.Time
}

// NewSecurityLogger creates a security event logger.
func NewSecurityLogger(logger pkgLog.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger, clock: time.Now}
}

// Log records a security event.
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = sl.clock()
	}

	sl.logger.Warnf(ctx, "security event | type=%s user=%s email=%s permission=%s path=%s reason=%s",
		event.Type, event.UserID, event.Email, event.Permission, event.Path, event.Reason)
}

// LoginFailure records a failed credential attempt.
func (sl *SecurityLogger) LoginFailure(ctx context.Context, email, reason string) {
	sl.Log(ctx, SecurityEvent{Type: SecurityEventLoginFailure, Email: email, Reason: reason})
}

// TokenRejected records a token that failed decode or validation.
func (sl *SecurityLogger) TokenRejected(ctx context.Context, path, reason string) {
	sl.Log(ctx, SecurityEvent{Type: SecurityEventTokenRejected, Path: path, Reason: reason})
}

// PermissionDenied records a gate denial.
func (sl *SecurityLogger) PermissionDenied(ctx context.Context, userID, permission, path string) {
	sl.Log(ctx, SecurityEvent{
		Type:       SecurityEventPermissionDenied,
		UserID:     userID,
		Permission: permission,
		Path:       path,
		Reason:     "permission denied",
	})
}

// RateLimited records a rate limited login attempt.
func (sl *SecurityLogger) RateLimited(ctx context.Context, email string) {
	sl.Log(ctx, SecurityEvent{Type: SecurityEventRateLimitExceeded, Email: email, Reason: "too many attempts"})
}
