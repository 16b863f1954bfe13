package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// BackendCall is one request the fake backend received.
type BackendCall struct {
	Method    string
	Path      string
	Body      string
	Cookie    string
	RequestID string
}

// FakeBackend is an httptest server standing in for the donation API.
// Routes are registered per "METHOD path"; anything else answers 404.
type FakeBackend struct {
	Server *httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []BackendCall
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{routes: make(map[string]http.HandlerFunc)}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL is the base URL to hand to the API client.
func (fb *FakeBackend) URL() string { return fb.Server.URL }

// Handle registers h for method and path.
func (fb *FakeBackend) Handle(method, path string, h http.HandlerFunc) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = h
}

// HandleJSON registers a route that always answers status with v as JSON.
func (fb *FakeBackend) HandleJSON(method, path string, status int, v any) {
	fb.Handle(method, path, JSONHandler(status, v))
}

// Calls returns a copy of the requests received so far.
func (fb *FakeBackend) Calls() []BackendCall {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]BackendCall, len(fb.calls))
	copy(out, fb.calls)
	return out
}

// CallCount returns how many requests matched method and path.
func (fb *FakeBackend) CallCount(method, path string) int {
	n := 0
	for _, c := range fb.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	fb.mu.Lock()
	fb.calls = append(fb.calls, BackendCall{
		Method:    r.Method,
		Path:      r.URL.Path,
		Body:      string(body),
		Cookie:    r.Header.Get("Cookie"),
		RequestID: r.Header.Get("X-Request-ID"),
	})
	h := fb.routes[r.Method+" "+r.URL.Path]
	fb.mu.Unlock()

	if h == nil {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// JSONHandler answers every request with status and v encoded as JSON.
// A json.RawMessage or []byte is written as is.
func JSONHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch b := v.(type) {
		case json.RawMessage:
			_, _ = w.Write(b)
		case []byte:
			_, _ = w.Write(b)
		default:
			_ = json.NewEncoder(w).Encode(v)
		}
	}
}
