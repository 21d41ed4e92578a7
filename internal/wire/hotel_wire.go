package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func hotelRoutes(r *chi.Mux, h *adaptor.HotelHandler) {
	r.Route("/api/hotels", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/list", h.List)
		r.Post("/get/{hotelId}", h.Get)
		r.Post("/update/{hotelId}", h.Update)
		r.Post("/delete/{hotelId}", h.Delete)
	})
}
