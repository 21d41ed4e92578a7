package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func userRoutes(r *chi.Mux, h *adaptor.UserHandler) {
	r.Route("/userManagement", func(r chi.Router) {
		r.Get("/get-by-email", h.GetByEmail)
		r.Delete("/delete-by-email", h.DeleteByEmail)
	})
}
