// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes wires the donor dashboard (mounted at "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeUser)
	return r
}

// AdminRoutes wires the admin dashboard (mounted at "/admin"). Whether the
// caller may see or change anything is decided by the backend.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdmin)
	r.Get("/chart", h.ServeChart)
	r.Post("/donations/{id}/confirm", h.HandleConfirm)
	r.Post("/donations/{id}/fail", h.HandleFail)
	return r
}
