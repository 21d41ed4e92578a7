package adaptor

import (
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHotelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Hotel booking created successfully", response.HotelToResponse(hotel))
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	hotels, err := h.service.List(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.HotelsToResponse(hotels))
}

func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "hotelId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.Get(r.Context(), id, req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.HotelToResponse(hotel))
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "hotelId")
	if !ok {
		return
	}

	var req request.UpdateHotelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Hotel booking updated successfully", response.HotelToResponse(hotel))
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "hotelId")
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

	utils.ResponseSuccess(w, "Hotel booking deleted successfully", nil)
}
