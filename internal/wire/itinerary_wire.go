package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func itineraryRoutes(r *chi.Mux, h *adaptor.ItineraryHandler) {
	r.Route("/itinerary", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/list", h.List)
		r.Post("/get/{itineraryId}", h.Get)
		r.Post("/update/{itineraryId}", h.Update)
		r.Post("/delete/{itineraryId}", h.Delete)
	})
}
