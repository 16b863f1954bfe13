// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"github.com/dalemusser/givingback/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type adminRow struct {
	ID          string
	DonorName   string
	DonorEmail  string
	Amount      string
	Message     string
	Pending     bool
	StatusLabel string
}

type charityLine struct {
	Name           string
	Count          int
	TotalAllocated string
}

type analyticsVM struct {
	TotalAmount    string
	CharityAmount  string // optional split; blank when the backend omits it
	CoupleAmount   string
	DonationsCount string
	PerCharity     []charityLine
}

// adminDonationsData is the donations block. It renders inside the page and,
// after an HTMX confirm/fail, on its own.
type adminDonationsData struct {
	CSRFToken string
	Donations viewdata.Slot[[]adminRow]
}

type adminDashboardData struct {
	viewdata.BaseVM
	List      adminDonationsData
	Analytics viewdata.Slot[analyticsVM]
}

// ServeAdmin handles GET /admin. Donations and analytics are fetched at the
// same time and land in separate slots; either may fail alone.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Admin Dashboard")
	data := adminDashboardData{
		BaseVM:    base,
		List:      adminDonationsData{CSRFToken: base.CSRFToken, Donations: viewdata.Loading[[]adminRow]()},
		Analytics: viewdata.Loading[analyticsVM](),
	}

	// Neither fetch returns an error to the group, so one failing never
	// cancels the other.
	var g errgroup.Group
	g.Go(func() error {
		data.List.Donations = h.fetchAdminDonations(r.Context())
		return nil
	})
	g.Go(func() error {
		data.Analytics = h.fetchAnalytics(r.Context())
		return nil
	})
	_ = g.Wait()

	h.Render.Page(w, r, "admin_dashboard", data)
}

func (h *Handler) fetchAdminDonations(parent context.Context) viewdata.Slot[[]adminRow] {
	ctx, cancel := timeouts.WithTimeout(parent, timeouts.Read(), h.Log, "list_donations")
	defer cancel()

	list, err := h.API.ListDonations(ctx)
	if err != nil {
		h.Log.Warn("admin: fetch donations failed", zap.Error(err))
		return viewdata.Failed[[]adminRow](msgDonationsFailed)
	}
	return viewdata.Loaded(adminRows(list))
}

func (h *Handler) fetchAnalytics(parent context.Context) viewdata.Slot[analyticsVM] {
	ctx, cancel := timeouts.WithTimeout(parent, timeouts.Read(), h.Log, "analytics")
	defer cancel()

	a, err := h.API.Analytics(ctx)
	if err != nil {
		h.Log.Warn("admin: fetch analytics failed", zap.Error(err))
		return viewdata.Failed[analyticsVM](msgAnalyticsFailed)
	}
	return viewdata.Loaded(toAnalyticsVM(a))
}

func adminRows(list []models.Donation) []adminRow {
	rows := make([]adminRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, adminRow{
			ID:          d.ID.String(),
			DonorName:   d.DonorName,
			DonorEmail:  d.DonorEmail,
			Amount:      d.Amount.String(),
			Message:     d.Message,
			Pending:     d.IsPending(),
			StatusLabel: models.StatusLabel(d.Status),
		})
	}
	return rows
}

func toAnalyticsVM(a models.AnalyticsSummary) analyticsVM {
	lines := make([]charityLine, 0, len(a.CountPerCharity))
	for _, c := range a.CountPerCharity {
		lines = append(lines, charityLine{
			Name:           c.CharityName,
			Count:          c.Count,
			TotalAllocated: c.TotalAllocated.String(),
		})
	}
	return analyticsVM{
		TotalAmount:    a.TotalAmount.String(),
		CharityAmount:  a.CharityAmount.String(),
		CoupleAmount:   a.CoupleAmount.String(),
		DonationsCount: strconv.Itoa(a.DonationsCount),
		PerCharity:     lines,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Status actions                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleConfirm handles POST /admin/donations/{id}/confirm.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, "confirm", h.API.ConfirmDonation)
}

// HandleFail handles POST /admin/donations/{id}/fail.
func (h *Handler) HandleFail(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, "fail", h.API.FailDonation)
}

// changeStatus runs the backend transition and then shows the re-fetched
// list. A rejected transition is logged only; the admin sees the list as the
// backend now reports it.
func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, action string, call func(context.Context, models.ID) error) {
	id := chi.URLParam(r, "id")
	actor := ""
	if u, ok := auth.CurrentUser(r); ok {
		actor = u.Username
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, action+"_donation")
	err := call(ctx, models.ID(id))
	cancel()

	switch {
	case err != nil:
		h.Log.Error("admin: donation status change failed",
			zap.String("action", action),
			zap.String("donation_id", id),
			zap.Error(err))
		h.AuditLog.StatusChangeFailed(r.Context(), r, actor, id, action, err.Error())
	case action == "confirm":
		h.AuditLog.DonationConfirmed(r.Context(), r, actor, id)
	default:
		h.AuditLog.DonationFailed(r.Context(), r, actor, id)
	}

	if r.Header.Get("HX-Request") == "true" {
		h.Render.Snippet(w, "admin_donations", adminDonationsData{
			CSRFToken: viewdata.NewBaseVM(r, "").CSRFToken,
			Donations: h.fetchAdminDonations(r.Context()),
		})
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Chart                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeChart handles GET /admin/chart, passing the backend chart image
// through with the caller's credential.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "chart")
	defer cancel()

	img, err := h.API.Chart(ctx)
	if err != nil {
		h.Log.Warn("admin: fetch chart failed", zap.Error(err))
		status := http.StatusBadGateway
		if donationapi.IsStatus(err, http.StatusForbidden) || donationapi.IsStatus(err, http.StatusUnauthorized) {
			status = http.StatusForbidden
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	_, _ = w.Write(img.Data)
}
