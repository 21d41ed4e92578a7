package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func flightRoutes(r *chi.Mux, h *adaptor.FlightHandler) {
	r.Route("/api/flights", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Route("/{flightId}/flights", func(r chi.Router) {
			r.Post("/", h.AddDetail)
			r.Post("/list", h.ListDetails)
			r.Post("/update/{detailId}", h.UpdateDetail)
			r.Post("/delete/{detailId}", h.DeleteDetail)
		})
	})
}
