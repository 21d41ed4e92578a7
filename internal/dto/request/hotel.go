package request

type CreateHotelRequest struct {
	Owner
	Name          string   `json:"name"`
	CheckInDate   string   `json:"check_in_date"`
	CheckOutDate  string   `json:"check_out_date"`
	PropertyToken *string  `json:"property_token"`
	Price         *float64 `json:"price"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Country       string   `json:"country"`
	City          string   `json:"city"`
}

type UpdateHotelRequest struct {
	Owner
	Name          *string  `json:"name"`
	CheckInDate   *string  `json:"check_in_date"`
	CheckOutDate  *string  `json:"check_out_date"`
	PropertyToken *string  `json:"property_token"`
	Price         *float64 `json:"price"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Country       *string  `json:"country"`
	City          *string  `json:"city"`
}
