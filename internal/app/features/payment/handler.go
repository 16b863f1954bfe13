// internal/app/features/payment/handler.go
package payment

import (
	"net/http"

	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// BankDetails are the manual transfer instructions shown to donors.
type BankDetails struct {
	Bank          string
	AccountNumber string
	RoutingNumber string
	Reference     string
}

// DefaultBankDetails is what the payment page shows.
var DefaultBankDetails = BankDetails{
	Bank:          "Example Bank",
	AccountNumber: "123456789",
	RoutingNumber: "987654321",
	Reference:     "Your Donation ID (provided in your confirmation email)",
}

type pageData struct {
	viewdata.BaseVM
	BankDetails
}

type Handler struct {
	Log    *zap.Logger
	Bank   BankDetails
	Render viewdata.Renderer
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger, Bank: DefaultBankDetails, Render: viewdata.EngineRenderer{}}
}

// ServeInstructions handles GET /payment-instructions. Static content only.
func (h *Handler) ServeInstructions(w http.ResponseWriter, r *http.Request) {
	h.Render.Page(w, r, "payment_instructions", pageData{
		BaseVM:      viewdata.NewBaseVM(r, "Manual Payment Instructions"),
		BankDetails: h.Bank,
	})
}
