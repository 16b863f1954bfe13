// internal/app/features/payment/routes.go
package payment

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeInstructions)
	return r
}
