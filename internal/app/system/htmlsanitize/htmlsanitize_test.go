package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/givingback/internal/app/system/htmlsanitize"
)

func TestStripTags_Empty(t *testing.T) {
	if got := htmlsanitize.StripTags(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStripTags_PlainText(t *testing.T) {
	if got := htmlsanitize.StripTags("Happy wedding!"); got != "Happy wedding!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestStripTags_KeepsAmpersands(t *testing.T) {
	if got := htmlsanitize.StripTags("Tom & Jerry"); got != "Tom & Jerry" {
		t.Errorf("expected ampersand preserved, got %q", got)
	}
}

func TestStripTags_RemovesScript(t *testing.T) {
	got := htmlsanitize.StripTags("Hello<script>alert('xss')</script>")
	if got != "Hello" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestStripTags_RemovesMarkupKeepsText(t *testing.T) {
	got := htmlsanitize.StripTags(`  <b>Bold</b> and <a href="javascript:alert(1)">link</a>  `)
	if got != "Bold and link" {
		t.Errorf("expected text only, got %q", got)
	}
}
