package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

type HotelResponse struct {
	ID            string    `json:"_id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	PropertyToken *string   `json:"property_token,omitempty"`
	Price         float64   `json:"price"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:            hotel.ID.String(),
		UserID:        hotel.UserID.String(),
		Name:          hotel.Name,
		CheckInDate:   hotel.CheckInDate,
		CheckOutDate:  hotel.CheckOutDate,
		PropertyToken: hotel.PropertyToken,
		Price:         hotel.Price,
		Latitude:      hotel.Latitude,
		Longitude:     hotel.Longitude,
		Country:       hotel.Country,
		City:          hotel.City,
		CreatedAt:     hotel.CreatedAt,
		UpdatedAt:     hotel.UpdatedAt,
	}
}

func HotelsToResponse(hotels []*entity.Hotel) []HotelResponse {
	out := make([]HotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = HotelToResponse(h)
	}
	return out
}
