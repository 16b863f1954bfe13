// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	confirmationfeature "github.com/dalemusser/givingback/internal/app/features/confirmation"
	dashboardfeature "github.com/dalemusser/givingback/internal/app/features/dashboard"
	_ "github.com/dalemusser/givingback/internal/app/features/dashboard/views" // registers dashboard templates
	donatefeature "github.com/dalemusser/givingback/internal/app/features/donate"
	errorsfeature "github.com/dalemusser/givingback/internal/app/features/errors"
	healthfeature "github.com/dalemusser/givingback/internal/app/features/health"
	loginfeature "github.com/dalemusser/givingback/internal/app/features/login"
	logoutfeature "github.com/dalemusser/givingback/internal/app/features/logout"
	paymentfeature "github.com/dalemusser/givingback/internal/app/features/payment"
	auditstore "github.com/dalemusser/givingback/internal/app/store/audit"
	"github.com/dalemusser/givingback/internal/app/system/auditlog"
	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// GivingBack initializes the template engine and the backend client, applies
// CSRF and session middleware, and mounts the feature routers: login,
// donation form, confirmation, payment instructions and the two dashboards.
// No route is guarded here; the backend decides what each credential may see.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	api, err := donationapi.New(donationapi.Config{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.APITimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("backend client init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Audit events go to MongoDB when it is configured, otherwise to zap only.
	var store *auditstore.Store
	if deps.GivingBackMongoDatabase != nil {
		store = auditstore.New(deps.GivingBackMongoDatabase)
	}
	audit := auditlog.New(store, logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health and metrics sit outside CSRF so probes need no token.
	healthHandler := healthfeature.NewHandler(deps.GivingBackMongoClient, api, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(markPlaintext)
		}
		r.Use(csrf.Protect(csrfKey(appCfg),
			csrf.Secure(secure),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				errLog.LogBadRequest(w, r, "csrf check failed", csrf.FailureReason(r),
					"Your form expired. Please go back and try again.")
			})),
		))

		// Global auth middleware: loads SessionUser into context if logged in
		// and attaches the backend credential to r.Context().
		r.Use(sessionMgr.LoadSessionUser)

		// Login is the landing page.
		loginHandler := loginfeature.NewHandler(api, sessionMgr, errLog, audit, logger)
		r.Get("/", loginHandler.ServeLogin)
		r.Post("/", loginHandler.HandleLoginPost)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		donateHandler := donatefeature.NewHandler(api, sessionMgr, errLog, logger)
		r.Mount("/donate", donatefeature.Routes(donateHandler))

		confirmationHandler := confirmationfeature.NewHandler(sessionMgr, logger)
		r.Mount("/confirmation", confirmationfeature.Routes(confirmationHandler))

		paymentHandler := paymentfeature.NewHandler(logger)
		r.Mount("/payment-instructions", paymentfeature.Routes(paymentHandler))

		dashboardHandler := dashboardfeature.NewHandler(api, audit, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))
		r.Mount("/admin", dashboardfeature.AdminRoutes(dashboardHandler))

		r.NotFound(errLog.NotFound)
	})

	return r, nil
}

// markPlaintext tells gorilla/csrf the request arrived over plain HTTP so
// its Referer check does not demand https in local development.
func markPlaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
