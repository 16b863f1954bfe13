// internal/domain/models/scalar.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Decimal is a currency amount kept in the textual form the API sent.
//
// The API may encode decimals as JSON numbers (50) or as strings ("50.00");
// both decode to the same type and render verbatim.
type Decimal string

// UnmarshalJSON accepts a number, a string, or null.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	*d = Decimal(s)
	return nil
}

// MarshalJSON writes text that is a valid JSON number as a bare number and
// anything else ("50.", "+50", "NaN") as a string, so every decoded value
// encodes again.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	if jsonNumber.MatchString(string(d)) {
		return []byte(d), nil
	}
	return json.Marshal(string(d))
}

// jsonNumber is the number grammar of RFC 8259.
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Float64 parses the amount. ok is false when it is empty or not numeric.
func (d Decimal) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (d Decimal) String() string { return string(d) }

// ID is a server-assigned identifier. The API sends numeric ids, but string
// ids decode as well so views never care which one arrived.
type ID string

// UnmarshalJSON accepts a number, a string, or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(s)
	return nil
}

// MarshalJSON writes integer ids as JSON numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// scalarText returns the text of a JSON number or string literal.
func scalarText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
