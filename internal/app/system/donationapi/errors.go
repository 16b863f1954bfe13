// internal/app/system/donationapi/errors.go
package donationapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedShape is returned when a response body decodes but does not
// have the structure the operation expects.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Op         string // operation name, e.g. "list_donations"
	StatusCode int
	Message    string // server-provided error text, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("donationapi: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("donationapi: %s: status %d", e.Op, e.StatusCode)
}

// ServerMessage returns the human-readable error text the backend sent with
// err, or "" when err is not an APIError or carried no text.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// errorBody extracts {"error": "..."} or {"detail": "..."} from a failure body.
func errorBody(body []byte) string {
	var eb struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(eb.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(eb.Detail)
}
