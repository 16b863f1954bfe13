// Package formutil provides helpers for re-rendering a form after a failed
// submission without going back to the backend.
//
// A form that shows server-provided choices (a select list) writes every
// choice into hidden fields; on POST the choices are rebuilt from the
// submitted form, so a validation failure can re-render the page as is.
//
// Example usage:
//
//	// template
//	{{range .Charities}}
//	  <input type="hidden" name="option_value" value="{{.Value}}">
//	  <input type="hidden" name="option_label" value="{{.Label}}">
//	{{end}}
//
//	// handler
//	opts := formutil.EchoOptions(r.PostForm, "option_value", "option_label", r.PostForm.Get("charity"))
package formutil

import (
	"net/url"
	"strings"
)

// Option is one choice in a select list.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// NewOptions builds options and marks the one whose Value equals selected.
func NewOptions(values, labels []string, selected string) []Option {
	n := min(len(values), len(labels))
	out := make([]Option, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Option{
			Value:    values[i],
			Label:    labels[i],
			Selected: selected != "" && values[i] == selected,
		})
	}
	return out
}

// EchoOptions rebuilds the options a form carried in parallel hidden fields.
// Pairs missing a value or label are dropped.
func EchoOptions(form url.Values, valueKey, labelKey, selected string) []Option {
	return NewOptions(form[valueKey], form[labelKey], selected)
}

// Trimmed returns the form value for key with surrounding space removed.
func Trimmed(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}
