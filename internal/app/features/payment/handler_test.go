package payment_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/givingback/internal/app/features/payment"
	"github.com/dalemusser/givingback/internal/testutil"
	"go.uber.org/zap"
)

func TestServeInstructions_ShowsBankDetails(t *testing.T) {
	h := payment.NewHandler(zap.NewNop())
	h.Render = testutil.NewRenderer(t, payment.FS)

	rec := testutil.NewRecorder()
	h.ServeInstructions(rec, testutil.NewRequest("GET", "/payment-instructions"))

	rec.AssertStatus(t, http.StatusOK)
	for _, want := range []string{
		"Manual Payment Instructions",
		"Example Bank",
		"123456789",
		"987654321",
		"Your Donation ID (provided in your confirmation email)",
		"Return Home",
	} {
		rec.AssertContains(t, want)
	}
}
