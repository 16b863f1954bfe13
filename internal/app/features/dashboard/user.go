// internal/app/features/dashboard/user.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"github.com/dalemusser/givingback/internal/domain/models"
	"go.uber.org/zap"
)

type userRow struct {
	DonorName  string
	DonorEmail string
	Amount     string
	Message    string
	Status     string // shown as stored
}

type userDashboardData struct {
	viewdata.BaseVM
	Donations viewdata.Slot[[]userRow]
}

// ServeUser handles GET /dashboard.
func (h *Handler) ServeUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list_donations")
	defer cancel()

	data := userDashboardData{BaseVM: viewdata.NewBaseVM(r, "User Dashboard")}

	list, err := h.API.ListDonations(ctx)
	if err != nil {
		h.Log.Warn("dashboard: fetch donations failed", zap.Error(err))
		data.Donations = viewdata.Failed[[]userRow](msgDonationsFailed)
	} else {
		data.Donations = viewdata.Loaded(userRows(list))
	}

	h.Render.Page(w, r, "user_dashboard", data)
}

func userRows(list []models.Donation) []userRow {
	rows := make([]userRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, userRow{
			DonorName:  d.DonorName,
			DonorEmail: d.DonorEmail,
			Amount:     d.Amount.String(),
			Message:    d.Message,
			Status:     d.Status,
		})
	}
	return rows
}
