// internal/app/features/dashboard/handler.go
package dashboard

import (
	"github.com/dalemusser/givingback/internal/app/system/auditlog"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Fixed texts shown in place of content when a fetch fails.
const (
	msgDonationsFailed = "Error fetching donations."
	msgAnalyticsFailed = "Error fetching analytics."
)

// Handler serves the donor dashboard (/dashboard) and the admin dashboard
// (/admin). Both read everything from the backend on every page load.
type Handler struct {
	API      *donationapi.Client
	Log      *zap.Logger
	AuditLog *auditlog.Logger
	Render   viewdata.Renderer
}

func NewHandler(api *donationapi.Client, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Log:      logger,
		AuditLog: audit,
		Render:   viewdata.EngineRenderer{},
	}
}
