// internal/domain/models/donation.go
package models

import (
	"strings"
	"time"
)

// Donation status values. A donation starts pending and moves to confirmed
// or failed only through an administrator action on the backend.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Donation is a pledge record as the donations API returns it.
type Donation struct {
	ID         ID         `json:"id"`
	Charity    ID         `json:"charity"`
	DonorName  string     `json:"donor_name"`
	DonorEmail string     `json:"donor_email"`
	Amount     Decimal    `json:"amount"`
	Message    string     `json:"message"`
	Status     string     `json:"status"` // pending | confirmed | failed
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// IsPending reports whether the donation still awaits an admin decision.
func (d Donation) IsPending() bool {
	return d.Status == StatusPending
}

// StatusLabel returns the status with its first letter upper-cased
// ("confirmed" → "Confirmed"). Other letters are left as stored.
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

// DonationInput is the body of a create-donation request.
//
// Charity is the raw value of the selected option, sent as a string.
type DonationInput struct {
	DonorName  string  `json:"donor_name"`
	DonorEmail string  `json:"donor_email"`
	Amount     float64 `json:"amount"`
	Message    string  `json:"message"`
	Charity    string  `json:"charity"`
}
