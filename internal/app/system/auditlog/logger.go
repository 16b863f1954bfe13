// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/givingback/internal/app/store/audit"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls logging for login/logout events.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Auth string
	// Admin controls logging for donation confirm/fail actions.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Admin string
}

// Logger provides convenience methods for logging audit events.
// It logs to MongoDB (via audit.Store) and structured logs (via zap).
// A nil store means the audit database is disabled; "all" and "db"
// then only reach zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// X-Forwarded-For may hold a chain; the first hop is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	default:
		setting = "all"
	}

	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func (l *Logger) fromRequest(r *http.Request, category, eventType, actor string, success bool) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		Actor:     actor,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
}

// --- Authentication Events ---

// LoginSuccess logs a successful backend login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, username string) {
	l.Log(ctx, l.fromRequest(r, audit.CategoryAuth, audit.EventLoginSuccess, username, true))
}

// LoginFailed logs a rejected login. reason is the backend's error text or
// the transport error.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, username, reason string) {
	e := l.fromRequest(r, audit.CategoryAuth, audit.EventLoginFailed, username, false)
	e.FailureReason = reason
	l.Log(ctx, e)
}

// Logout logs a sign out.
func (l *Logger) Logout(ctx context.Context, r *http.Request, username string) {
	l.Log(ctx, l.fromRequest(r, audit.CategoryAuth, audit.EventLogout, username, true))
}

// --- Admin Events ---

// DonationConfirmed logs an admin confirming a donation.
func (l *Logger) DonationConfirmed(ctx context.Context, r *http.Request, actor, donationID string) {
	e := l.fromRequest(r, audit.CategoryAdmin, audit.EventDonationConfirmed, actor, true)
	e.Details = map[string]string{"donation_id": donationID}
	l.Log(ctx, e)
}

// DonationFailed logs an admin marking a donation failed.
func (l *Logger) DonationFailed(ctx context.Context, r *http.Request, actor, donationID string) {
	e := l.fromRequest(r, audit.CategoryAdmin, audit.EventDonationFailed, actor, true)
	e.Details = map[string]string{"donation_id": donationID}
	l.Log(ctx, e)
}

// StatusChangeFailed logs a confirm/fail action the backend rejected.
func (l *Logger) StatusChangeFailed(ctx context.Context, r *http.Request, actor, donationID, action, reason string) {
	e := l.fromRequest(r, audit.CategoryAdmin, audit.EventDonationStatusFailed, actor, false)
	e.FailureReason = reason
	e.Details = map[string]string{"donation_id": donationID, "action": action}
	l.Log(ctx, e)
}
