package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler bundles every HTTP adaptor for wiring.
type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Flight    *FlightHandler
	Hotel     *HotelHandler
	Itinerary *ItineraryHandler
	Expense   *ExpenseHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Flight:    NewFlightHandler(service.Flight, log),
		Hotel:     NewHotelHandler(service.Hotel, log),
		Itinerary: NewItineraryHandler(service.Itinerary, log),
		Expense:   NewExpenseHandler(service.Expense, log),
	}
}

// decodeBody parses the JSON request body into dst. An empty body is allowed
// so routes that only need URL parameters still work with `{}`-less clients.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		utils.ResponseBadRequest(w, "Invalid JSON body")
		return false
	}
	return true
}

// urlID parses the named chi URL parameter as a UUID.
func urlID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id in URL")
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps usecase errors onto HTTP responses. Anything not in the
// table is treated as an internal failure and logged by the caller.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		if len(validationErr.Details) == 1 {
			utils.ResponseBadRequest(w, validationErr.Details[0])
		} else {
			utils.ResponseValidationFailed(w, validationErr.Details)
		}
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrFlightNotFound),
		errors.Is(err, usecase.ErrFlightDetailNotFound),
		errors.Is(err, usecase.ErrHotelNotFound),
		errors.Is(err, usecase.ErrItineraryNotFound),
		errors.Is(err, usecase.ErrExpenseNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrOTPExpired), errors.Is(err, usecase.ErrOTPInvalid):
		utils.ResponseBadRequest(w, err.Error())
	default:
		log.Error("Request failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
