package request

type CreateFlightRequest struct {
	Owner
	DepartureDate    string   `json:"departure_date"`
	ReturnDate       string   `json:"return_date"`
	DepartureCountry string   `json:"departure_country"`
	DepartureCity    string   `json:"departure_city"`
	ArrivalCountry   string   `json:"arrival_country"`
	ArrivalCity      string   `json:"arrival_city"`
	DepartureToken   *string  `json:"departure_token"`
	Price            *float64 `json:"price"`
	Status           string   `json:"status"`
}

// UpdateFlightDetailRequest carries a partial update; nil fields are left
// untouched.
type UpdateFlightDetailRequest struct {
	Owner
	DepartureDate    *string  `json:"departure_date"`
	ReturnDate       *string  `json:"return_date"`
	DepartureCountry *string  `json:"departure_country"`
	DepartureCity    *string  `json:"departure_city"`
	ArrivalCountry   *string  `json:"arrival_country"`
	ArrivalCity      *string  `json:"arrival_city"`
	DepartureToken   *string  `json:"departure_token"`
	Price            *float64 `json:"price"`
	Status           *string  `json:"status"`
}
