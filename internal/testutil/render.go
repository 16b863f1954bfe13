package testutil

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"testing"

	"github.com/dalemusser/givingback/internal/app/resources"
)

// Renderer executes the embedded templates with html/template so handler
// tests see the real HTML a page produces. It satisfies viewdata.Renderer.
type Renderer struct {
	t    *testing.T
	tmpl *template.Template

	// Last is the name of the most recently rendered template.
	Last string
}

// NewRenderer parses the shared layout plus templates/*.gohtml from each of
// the given feature filesystems.
func NewRenderer(t *testing.T, featureFS ...fs.FS) *Renderer {
	t.Helper()
	tmpl, err := template.ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	for _, fsys := range featureFS {
		if tmpl, err = tmpl.ParseFS(fsys, "templates/*.gohtml"); err != nil {
			t.Fatalf("parse feature templates: %v", err)
		}
	}
	return &Renderer{t: t, tmpl: tmpl}
}

// Page renders a full page template.
func (rr *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	rr.render(w, name, data)
}

// Snippet renders a fragment template.
func (rr *Renderer) Snippet(w http.ResponseWriter, name string, data any) {
	rr.render(w, name, data)
}

func (rr *Renderer) render(w http.ResponseWriter, name string, data any) {
	rr.Last = name
	var buf bytes.Buffer
	if err := rr.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		rr.t.Errorf("render %q: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
