package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func expenseRoutes(r *chi.Mux, h *adaptor.ExpenseHandler) {
	r.Route("/api/expenses", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/list", h.List)
		r.Post("/update/{expenseId}", h.Update)
		r.Post("/delete/{expenseId}", h.Delete)
	})
}
