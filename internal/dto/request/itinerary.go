package request

import "github.com/Colin-Stark/travelwise-server/internal/data/entity"

type CreateItineraryRequest struct {
	Owner
	GL          *string                 `json:"gl"`
	Title       string                  `json:"title"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	Country     string                  `json:"country"`
	City        string                  `json:"city"`
	Description *string                 `json:"description"`
	Img         *string                 `json:"img"`
	Flight      *entity.ItineraryFlight `json:"flight"`
	Hotel       *entity.ItineraryHotel  `json:"hotel"`
	Schedules   []entity.Schedule       `json:"schedules"`
}

type UpdateItineraryRequest struct {
	Owner
	GL          *string                 `json:"gl"`
	Title       *string                 `json:"title"`
	StartDate   *string                 `json:"start_date"`
	EndDate     *string                 `json:"end_date"`
	Country     *string                 `json:"country"`
	City        *string                 `json:"city"`
	Description *string                 `json:"description"`
	Img         *string                 `json:"img"`
	Flight      *entity.ItineraryFlight `json:"flight"`
	Hotel       *entity.ItineraryHotel  `json:"hotel"`
	Schedules   []entity.Schedule       `json:"schedules"`
}
