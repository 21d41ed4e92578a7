package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

type ItineraryResponse struct {
	ID          string                  `json:"_id"`
	UserID      string                  `json:"user_id"`
	ExternalID  int64                   `json:"id"`
	GL          *string                 `json:"gl,omitempty"`
	Title       string                  `json:"title"`
	StartDate   time.Time               `json:"start_date"`
	EndDate     time.Time               `json:"end_date"`
	Country     string                  `json:"country"`
	City        string                  `json:"city"`
	Description *string                 `json:"description,omitempty"`
	Img         *string                 `json:"img,omitempty"`
	Flight      *entity.ItineraryFlight `json:"flight,omitempty"`
	Hotel       *entity.ItineraryHotel  `json:"hotel,omitempty"`
	Schedules   []entity.Schedule       `json:"schedules"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func ItineraryToResponse(it *entity.Itinerary) ItineraryResponse {
	return ItineraryResponse{
		ID:          it.ID.String(),
		UserID:      it.UserID.String(),
		ExternalID:  it.ExternalID,
		GL:          it.GL,
		Title:       it.Title,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		Country:     it.Country,
		City:        it.City,
		Description: it.Description,
		Img:         it.Img,
		Flight:      it.Flight,
		Hotel:       it.Hotel,
		Schedules:   it.Schedules,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func ItinerariesToResponse(its []*entity.Itinerary) []ItineraryResponse {
	out := make([]ItineraryResponse, len(its))
	for i, it := range its {
		out[i] = ItineraryToResponse(it)
	}
	return out
}
