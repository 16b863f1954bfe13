// internal/app/features/payment/templates.go
package payment

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "payment",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
