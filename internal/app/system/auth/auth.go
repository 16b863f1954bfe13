package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "givingback-session"

	isAuthKey     = "is_authenticated"
	userNameKey   = "user_name"
	credentialKey = "api_credential"
	flashKey      = "flash"
)

// SessionManager owns the cookie store holding the browser session: who
// signed in and the backend credential their calls are made with.
type SessionManager struct {
	store  *sessions.CookieStore
	name   string
	logger *zap.Logger
}

// NewSessionManager builds the cookie store.
//
// In production (secure=true) cookies are Secure + SameSite=None.
// In local dev over http://localhost use secure=false so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, logger: logger}, nil
}

// GetSession returns the browser session. A cookie that no longer decodes
// (rotated key, tampering) yields a fresh session instead of an error.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			sm.logger.Debug("discarding undecodable session cookie", zap.Error(err))
			return sess, nil
		}
		return nil, err
	}
	return sess, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Sign in / out                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// SignIn records username and the backend credential in the session.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, username string, cred donationapi.Credential) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values[isAuthKey] = true
	sess.Values[userNameKey] = username
	sess.Values[credentialKey] = cred.Cookie
	return sess.Save(r, w)
}

// SignOut drops the credential and expires the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		return err
	}
	delete(sess.Values, isAuthKey)
	delete(sess.Values, userNameKey)
	delete(sess.Values, credentialKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Flash                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// SetFlash stores a one-shot value read back by PopFlash.
func (sm *SessionManager) SetFlash(w http.ResponseWriter, r *http.Request, v string) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values[flashKey] = v
	return sess.Save(r, w)
}

// PopFlash returns and clears the one-shot value. ok is false when none was set.
func (sm *SessionManager) PopFlash(w http.ResponseWriter, r *http.Request) (string, bool, error) {
	sess, err := sm.GetSession(r)
	if err != nil {
		return "", false, err
	}
	v, ok := sess.Values[flashKey].(string)
	if !ok {
		return "", false, nil
	}
	delete(sess.Values, flashKey)
	if err := sess.Save(r, w); err != nil {
		return "", false, err
	}
	return v, true, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	Username   string
	Credential donationapi.Credential
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// LoadSessionUser injects the signed-in user into the request context and
// attaches their backend credential so API calls made with r.Context()
// carry it.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.GetSession(r)
		if err != nil {
			sm.logger.Warn("session load failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				Username:   getString(sess, userNameKey),
				Credential: donationapi.Credential{Cookie: getString(sess, credentialKey)},
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser puts u into the request context the way LoadSessionUser does.
// Handlers use it after SignIn so the rest of the request sees the new user.
func WithUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// WithTestUser is WithUser for tests that skip the cookie round trip.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	ctx := context.WithValue(r.Context(), currentUserKey, u)
	if !u.Credential.IsZero() {
		ctx = donationapi.WithCredential(ctx, u.Credential)
	}
	return r.WithContext(ctx)
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
