package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightStatusBooked   FlightStatus = "booked"
	FlightStatusCanceled FlightStatus = "canceled"
)

// FlightDetail is one leg inside a flight document. The details array is
// stored as a JSONB column, matching the embedded-document shape of the API.
type FlightDetail struct {
	ID               uuid.UUID    `json:"_id"`
	UserID           uuid.UUID    `json:"user_id"`
	DepartureDate    time.Time    `json:"departure_date"`
	ReturnDate       time.Time    `json:"return_date"`
	DepartureCountry string       `json:"departure_country"`
	DepartureCity    string       `json:"departure_city"`
	ArrivalCountry   string       `json:"arrival_country"`
	ArrivalCity      string       `json:"arrival_city"`
	DepartureToken   *string      `json:"departure_token,omitempty"`
	Price            float64      `json:"price"`
	Status           FlightStatus `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Flight is the container document: destination summary plus embedded legs.
type Flight struct {
	Base
	UserID    uuid.UUID      `db:"user_id"`
	Name      string         `db:"name"`
	Country   string         `db:"country"`
	City      string         `db:"city"`
	StartDate time.Time      `db:"start_date"`
	EndDate   time.Time      `db:"end_date"`
	Details   []FlightDetail `db:"details"`
}
