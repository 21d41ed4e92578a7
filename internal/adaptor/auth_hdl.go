package adaptor

import (
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.NewAuthBody("User registered successfully", user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.NewAuthBody("Login successful", user))
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "OTP sent to email", nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Password reset successful", nil)
}
