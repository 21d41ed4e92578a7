package adaptor

import (
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Flight created successfully", response.FlightToResponse(flight))
}

func (h *FlightHandler) AddDetail(w http.ResponseWriter, r *http.Request) {
	flightID, ok := urlID(w, r, "flightId")
	if !ok {
		return
	}

	var req request.CreateFlightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.service.AddDetail(r.Context(), flightID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Flight detail added successfully", response.FlightToResponse(flight))
}

func (h *FlightHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	flightID, ok := urlID(w, r, "flightId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.service.ListDetails(r.Context(), flightID, req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.FlightToResponse(flight))
}

func (h *FlightHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	flightID, ok := urlID(w, r, "flightId")
	if !ok {
		return
	}
	detailID, ok := urlID(w, r, "detailId")
	if !ok {
		return
	}

	var req request.UpdateFlightDetailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.service.UpdateDetail(r.Context(), flightID, detailID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Flight detail updated successfully", response.FlightToResponse(flight))
}

func (h *FlightHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	flightID, ok := urlID(w, r, "flightId")
	if !ok {
		return
	}
	detailID, ok := urlID(w, r, "detailId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.service.DeleteDetail(r.Context(), flightID, detailID, req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Flight detail deleted successfully", response.FlightToResponse(flight))
}
