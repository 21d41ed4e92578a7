package adaptor

import (
	"net/http"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetByEmail looks an account up by the email query parameter.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.NewProfileBody(user))
}

func (h *UserHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.DeleteByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.NewDeletedUserBody(user, time.Now()))
}
