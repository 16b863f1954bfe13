// internal/domain/models/analytics.go
package models

// AnalyticsSummary is computed by the backend over confirmed donations.
// The front-end only renders it.
type AnalyticsSummary struct {
	TotalAmount     Decimal            `json:"total_amount"`
	CharityAmount   Decimal            `json:"charity_amount,omitempty"`
	CoupleAmount    Decimal            `json:"couple_amount,omitempty"`
	DonationsCount  int                `json:"donations_count"`
	CountPerCharity []CharityAggregate `json:"count_per_charity"`
}

// CharityAggregate is one per-charity row of the summary. The label is the
// charity's display name as grouped by the backend (charity__name).
type CharityAggregate struct {
	CharityName    string  `json:"charity__name"`
	Count          int     `json:"count"`
	TotalAllocated Decimal `json:"total_allocated"`
}
