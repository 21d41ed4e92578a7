package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type FlightResponse struct {
	ID          string                `json:"_id"`
	UserID      string                `json:"userId"`
	Name        string                `json:"name"`
	Destination Location              `json:"destination"`
	StartDate   time.Time             `json:"startDate"`
	EndDate     time.Time             `json:"endDate"`
	Flights     []entity.FlightDetail `json:"flights"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:          flight.ID.String(),
		UserID:      flight.UserID.String(),
		Name:        flight.Name,
		Destination: Location{Country: flight.Country, City: flight.City},
		StartDate:   flight.StartDate,
		EndDate:     flight.EndDate,
		Flights:     flight.Details,
		CreatedAt:   flight.CreatedAt,
		UpdatedAt:   flight.UpdatedAt,
	}
}
