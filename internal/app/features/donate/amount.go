// internal/app/features/donate/amount.go
package donate

import (
	"math"
	"strconv"
	"strings"
)

// customChoice is the amount option that reads the free-form field.
const customChoice = "custom"

// presetAmounts are the fixed choices in display order.
var presetAmounts = []string{"10", "20", "50", "100"}

// ResolveAmount returns the effective donation amount. selected is the
// chosen option ("10", "20", "50", "100" or "custom"); custom is the
// free-form field. ok is false when the amount is missing, not a number, or
// not positive.
func ResolveAmount(selected, custom string) (float64, bool) {
	raw := selected
	if selected == customChoice {
		raw = custom
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
