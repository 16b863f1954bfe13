// internal/app/features/donate/handler.go
package donate

import (
	"net/http"
	"net/url"

	uierrors "github.com/dalemusser/givingback/internal/app/features/errors"
	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/givingback/internal/app/system/formutil"
	"github.com/dalemusser/givingback/internal/app/system/htmlsanitize"
	"github.com/dalemusser/givingback/internal/app/system/navstate"
	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"github.com/dalemusser/givingback/internal/domain/models"
	"go.uber.org/zap"
)

const (
	msgInvalidAmount = "Please enter a valid donation amount."
	msgSubmitFailed  = "Error submitting donation. Please try again."

	// hidden fields carrying the charity list through a POST
	optionValueField = "charity_option_value"
	optionLabelField = "charity_option_label"
)

type Handler struct {
	API        *donationapi.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Render     viewdata.Renderer
}

func NewHandler(api *donationapi.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Render:     viewdata.EngineRenderer{},
	}
}

type amountOption struct {
	Value   string
	Label   string
	Checked bool
}

type formData struct {
	viewdata.BaseVM
	Feedback string

	DonorName    string
	DonorEmail   string
	Amounts      []amountOption
	CustomAmount string
	Message      string
	Charities    []formutil.Option
}

func amountOptions(selected string) []amountOption {
	out := make([]amountOption, 0, len(presetAmounts)+1)
	for _, v := range presetAmounts {
		out = append(out, amountOption{Value: v, Label: "$" + v, Checked: v == selected})
	}
	return append(out, amountOption{Value: customChoice, Label: "Custom", Checked: selected == customChoice})
}

// ServeForm handles GET /donate. The charity list is fetched once; if that
// fails the form still renders, just without charity choices.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list_charities")
	defer cancel()

	var options []formutil.Option
	charities, err := h.API.ListCharities(ctx)
	if err != nil {
		h.Log.Warn("donate: fetch charities failed", zap.Error(err))
	} else {
		values := make([]string, len(charities))
		labels := make([]string, len(charities))
		for i, c := range charities {
			values[i], labels[i] = c.ID.String(), c.Name
		}
		options = formutil.NewOptions(values, labels, "")
	}

	h.Render.Page(w, r, "donate_form", formData{
		BaseVM:    viewdata.NewBaseVM(r, "Make a Donation"),
		Amounts:   amountOptions(""),
		Charities: options,
	})
}

// HandleSubmit handles POST /donate.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.")
		return
	}
	form := r.PostForm
	data := echo(form)

	amount, ok := ResolveAmount(form.Get("amount"), form.Get("custom_amount"))
	if !ok {
		h.renderWithFeedback(w, r, data, msgInvalidAmount)
		return
	}

	in := models.DonationInput{
		DonorName:  form.Get("donor_name"),
		DonorEmail: form.Get("donor_email"),
		Amount:     amount,
		Message:    htmlsanitize.StripTags(form.Get("message")),
		Charity:    form.Get("charity"),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "create_donation")
	defer cancel()

	created, err := h.API.CreateDonation(ctx, in)
	if err != nil {
		h.Log.Error("donate: create donation failed", zap.Error(err))
		h.renderWithFeedback(w, r, data, msgSubmitFailed)
		return
	}

	if err := navstate.PutDonation(h.SessionMgr, w, r, created); err != nil {
		h.ErrLog.LogServerError(w, r, "donate: store confirmation", err, "Your donation was received but we could not show the confirmation.")
		return
	}
	http.Redirect(w, r, "/confirmation", http.StatusSeeOther)
}

// echo rebuilds the form as submitted so a re-render keeps every entry.
func echo(form url.Values) formData {
	selected := form.Get("amount")
	return formData{
		DonorName:    formutil.Trimmed(form, "donor_name"),
		DonorEmail:   formutil.Trimmed(form, "donor_email"),
		Amounts:      amountOptions(selected),
		CustomAmount: form.Get("custom_amount"),
		Message:      form.Get("message"),
		Charities:    formutil.EchoOptions(form, optionValueField, optionLabelField, form.Get("charity")),
	}
}

func (h *Handler) renderWithFeedback(w http.ResponseWriter, r *http.Request, data formData, feedback string) {
	data.BaseVM = viewdata.NewBaseVM(r, "Make a Donation")
	data.Feedback = feedback
	h.Render.Page(w, r, "donate_form", data)
}
