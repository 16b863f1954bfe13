package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"go.uber.org/zap"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

// carryCookies copies Set-Cookie headers from rec onto a new request.
func carryCookies(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestSignIn_LoadSessionUser_InjectsUserAndCredential(t *testing.T) {
	sm := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := sm.SignIn(rec, req, "admin", donationapi.Credential{Cookie: "sessionid=abc"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var gotUser *auth.SessionUser
	var gotCred donationapi.Credential
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = auth.CurrentUser(r)
		gotCred, _ = donationapi.CredentialFrom(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), carryCookies(rec, "GET", "/dashboard"))

	if gotUser == nil || gotUser.Username != "admin" {
		t.Fatalf("expected user admin, got %+v", gotUser)
	}
	if gotCred.Cookie != "sessionid=abc" {
		t.Errorf("expected credential in context, got %q", gotCred.Cookie)
	}
}

func TestLoadSessionUser_NoSession_NoUser(t *testing.T) {
	sm := newTestSessionManager(t)

	called := false
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("expected no user")
		}
		if _, ok := donationapi.CredentialFrom(r.Context()); ok {
			t.Error("expected no credential")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if !called {
		t.Fatal("next handler not called")
	}
}

func TestLoadSessionUser_TamperedCookie_TreatedAsAnonymous(t *testing.T) {
	sm := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: "not-a-valid-cookie"})

	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("expected no user for tampered cookie")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestSignOut_ClearsUser(t *testing.T) {
	sm := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	if err := sm.SignIn(rec, httptest.NewRequest("POST", "/login", nil), "admin", donationapi.Credential{Cookie: "x=1"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	out := httptest.NewRecorder()
	if err := sm.SignOut(out, carryCookies(rec, "GET", "/logout")); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	// A browser drops an expired cookie; the session reloaded from the
	// new cookie value must hold no user either way.
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("expected no user after sign out")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), carryCookies(out, "GET", "/"))
}

func TestFlash_IsOneShot(t *testing.T) {
	sm := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	if err := sm.SetFlash(rec, httptest.NewRequest("POST", "/donate", nil), `{"id":1}`); err != nil {
		t.Fatalf("SetFlash: %v", err)
	}

	first := httptest.NewRecorder()
	v, ok, err := sm.PopFlash(first, carryCookies(rec, "GET", "/confirmation"))
	if err != nil || !ok || v != `{"id":1}` {
		t.Fatalf("first pop: got %q ok=%v err=%v", v, ok, err)
	}

	second := httptest.NewRecorder()
	_, ok, err = sm.PopFlash(second, carryCookies(first, "GET", "/confirmation"))
	if err != nil {
		t.Fatalf("second pop: %v", err)
	}
	if ok {
		t.Error("flash should be gone after the first read")
	}
}

func TestCurrentUser_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	user, ok := auth.CurrentUser(req)
	if ok || user != nil {
		t.Errorf("expected no user, got %+v", user)
	}
}

func TestWithTestUser_AttachesCredential(t *testing.T) {
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		Username:   "donor",
		Credential: donationapi.Credential{Cookie: "sessionid=z"},
	})
	if u, ok := auth.CurrentUser(req); !ok || u.Username != "donor" {
		t.Fatalf("expected donor, got %+v", u)
	}
	if c, ok := donationapi.CredentialFrom(req.Context()); !ok || c.Cookie != "sessionid=z" {
		t.Errorf("expected credential, got %+v", c)
	}
}
