// internal/domain/models/charity.go
package models

// Charity is read-only reference data used to populate the donation form.
type Charity struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}
