package adaptor

import (
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type ItineraryHandler struct {
	service usecase.ItineraryService
	log     *zap.Logger
}

func NewItineraryHandler(service usecase.ItineraryService, log *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		service: service,
		log:     log.With(zap.String("handler", "itinerary")),
	}
}

func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	itinerary, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Itinerary created successfully", response.ItineraryToResponse(itinerary))
}

func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request) {
	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	itineraries, err := h.service.List(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.ItinerariesToResponse(itineraries))
}

func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "itineraryId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	itinerary, err := h.service.Get(r.Context(), id, req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.ItineraryToResponse(itinerary))
}

func (h *ItineraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "itineraryId")
	if !ok {
		return
	}

	var req request.UpdateItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	itinerary, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Itinerary updated successfully", response.ItineraryToResponse(itinerary))
}

func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "itineraryId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Delete(r.Context(), id, req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Itinerary deleted successfully", nil)
}
