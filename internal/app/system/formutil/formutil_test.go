package formutil_test

import (
	"net/url"
	"testing"

	"github.com/dalemusser/givingback/internal/app/system/formutil"
)

func TestEchoOptions_RebuildsAndMarksSelected(t *testing.T) {
	form := url.Values{
		"option_value": {"1", "2"},
		"option_label": {"Charity 1", "Charity 2"},
	}
	got := formutil.EchoOptions(form, "option_value", "option_label", "2")

	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if got[0].Selected || !got[1].Selected {
		t.Errorf("expected only the second option selected, got %+v", got)
	}
	if got[1].Label != "Charity 2" {
		t.Errorf("label: got %q", got[1].Label)
	}
}

func TestEchoOptions_UnevenPairsDropped(t *testing.T) {
	form := url.Values{
		"option_value": {"1", "2", "3"},
		"option_label": {"Charity 1"},
	}
	if got := formutil.EchoOptions(form, "option_value", "option_label", ""); len(got) != 1 {
		t.Errorf("expected 1 option, got %d", len(got))
	}
}

func TestEchoOptions_Missing(t *testing.T) {
	if got := formutil.EchoOptions(url.Values{}, "v", "l", ""); len(got) != 0 {
		t.Errorf("expected no options, got %d", len(got))
	}
}

func TestTrimmed(t *testing.T) {
	form := url.Values{"name": {"  Jane Doe "}}
	if got := formutil.Trimmed(form, "name"); got != "Jane Doe" {
		t.Errorf("got %q", got)
	}
}
