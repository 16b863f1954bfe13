// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and request body limits. AppConfig carries everything this
// front end needs: where the donation backend lives, how the browser
// session is signed, and where audit events go.
type AppConfig struct {
	// Donation backend
	APIBaseURL string        // e.g., http://localhost:8000
	APITimeout time.Duration // per-request ceiling on the HTTP client

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: givingback-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Lifetime of the session cookie

	// CSRF protection for form posts
	CSRFKey string // 32-byte key; the session key is reused when blank

	// MongoDB holds the audit trail. A blank URI disables it.
	MongoURI      string
	MongoDatabase string

	// Audit logging
	AuditLogAuth  string // all | db | log | off
	AuditLogAdmin string // all | db | log | off
}
