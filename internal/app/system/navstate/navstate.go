// internal/app/system/navstate/navstate.go
//
// Package navstate carries a just-created donation from the donation form to
// the confirmation page. The payload lives in a one-shot session flash: it is
// read at most once and never re-fetched from the backend.
package navstate

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dalemusser/givingback/internal/domain/models"
)

// Flasher is the slice of the session manager navstate needs.
type Flasher interface {
	SetFlash(w http.ResponseWriter, r *http.Request, v string) error
	PopFlash(w http.ResponseWriter, r *http.Request) (string, bool, error)
}

// PutDonation stores d for the next TakeDonation.
func PutDonation(f Flasher, w http.ResponseWriter, r *http.Request, d models.Donation) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("navstate: encode donation: %w", err)
	}
	return f.SetFlash(w, r, string(b))
}

// TakeDonation returns the stored donation and clears it. ok is false when
// nothing was stored or the payload no longer decodes.
func TakeDonation(f Flasher, w http.ResponseWriter, r *http.Request) (models.Donation, bool, error) {
	raw, ok, err := f.PopFlash(w, r)
	if err != nil || !ok {
		return models.Donation{}, false, err
	}
	var d models.Donation
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return models.Donation{}, false, nil
	}
	return d, true, nil
}
