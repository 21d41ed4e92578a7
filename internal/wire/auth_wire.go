package wire

import (
	"github.com/Colin-Stark/travelwise-server/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func authRoutes(r *chi.Mux, h *adaptor.AuthHandler) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/login/forgot-password", h.ForgotPassword)
	r.Post("/login/reset-password", h.ResetPassword)
}
