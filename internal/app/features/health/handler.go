package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client // nil when the audit database is not configured
	API    *donationapi.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(client *mongo.Client, api *donationapi.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		API:    api,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	API      string `json:"api"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "api":"reachable" }
//
// An unreachable backend is reported but does not fail the check; this
// process still serves pages. A configured database that does not answer
// returns 503:
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "disabled",
		API:      "reachable",
	}

	// Each check gets its own deadline; a stalled backend must not eat the
	// time the database ping needs.
	if h.API != nil && !h.pingAPI(r.Context()) {
		resp.API = "unreachable"
	}

	if h.Client != nil {
		if err := h.pingMongo(r.Context()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) pingAPI(parent context.Context) bool {
	ctx, cancel := context.WithTimeout(parent, timeouts.Ping())
	defer cancel()

	if err := h.API.Ping(ctx); err != nil {
		h.Log.Warn("health-check: backend unreachable", zap.Error(err))
		return false
	}
	return true
}

func (h *Handler) pingMongo(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, timeouts.Ping())
	defer cancel()
	return h.Client.Ping(ctx, readpref.Primary())
}
