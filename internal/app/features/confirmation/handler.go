// internal/app/features/confirmation/handler.go
package confirmation

import (
	"net/http"

	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/navstate"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"github.com/dalemusser/givingback/internal/domain/models"
	"go.uber.org/zap"
)

const noMessage = "No message provided"

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Render     viewdata.Renderer
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, SessionMgr: sessionMgr, Render: viewdata.EngineRenderer{}}
}

type donationVM struct {
	DonorName  string
	DonorEmail string
	Amount     string
	Message    string
}

type pageData struct {
	viewdata.BaseVM
	Donation *donationVM // nil when the page was reached without a fresh submission
}

// Serve handles GET /confirmation. The donation shown is only the one the
// form just created; the backend is never asked for it.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	data := pageData{BaseVM: viewdata.NewBaseVM(r, "Donation Confirmation")}

	d, ok, err := navstate.TakeDonation(h.SessionMgr, w, r)
	if err != nil {
		h.Log.Warn("confirmation: read flash failed", zap.Error(err))
	}
	if ok {
		data.Donation = toVM(d)
	}

	h.Render.Page(w, r, "confirmation", data)
}

func toVM(d models.Donation) *donationVM {
	msg := d.Message
	if msg == "" {
		msg = noMessage
	}
	return &donationVM{
		DonorName:  d.DonorName,
		DonorEmail: d.DonorEmail,
		Amount:     d.Amount.String(),
		Message:    msg,
	}
}
