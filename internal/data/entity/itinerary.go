package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleLocation is a place entry inside a schedule day. All fields come
// from the upstream places search, so most are optional.
type ScheduleLocation struct {
	DataID      *string  `json:"data_id,omitempty"`
	Title       string   `json:"title"`
	PlaceID     *string  `json:"place_id,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Reviews     *int     `json:"reviews,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Address     *string  `json:"address,omitempty"`
	OpenState   *string  `json:"open_state,omitempty"`
	Description *string  `json:"description,omitempty"`
	UserReview  *string  `json:"user_review,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
}

type Schedule struct {
	Day       time.Time          `json:"day"`
	Locations []ScheduleLocation `json:"locations"`
}

type ItineraryFlight struct {
	DepartureToken *string  `json:"departure_token,omitempty"`
	Price          *float64 `json:"price,omitempty"`
}

type ItineraryHotel struct {
	PropertyToken *string  `json:"property_token,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// Itinerary is a trip plan with embedded flight/hotel references and a
// per-day schedule, all stored as JSONB documents.
type Itinerary struct {
	Base
	UserID      uuid.UUID        `db:"user_id"`
	ExternalID  int64            `db:"external_id"`
	GL          *string          `db:"gl"`
	Title       string           `db:"title"`
	StartDate   time.Time        `db:"start_date"`
	EndDate     time.Time        `db:"end_date"`
	Country     string           `db:"country"`
	City        string           `db:"city"`
	Description *string          `db:"description"`
	Img         *string          `db:"img"`
	Flight      *ItineraryFlight `db:"flight"`
	Hotel       *ItineraryHotel  `db:"hotel"`
	Schedules   []Schedule       `db:"schedules"`
}
