package entity

import (
	"time"

	"github.com/google/uuid"
)

type Hotel struct {
	Base
	UserID        uuid.UUID `db:"user_id"`
	Name          string    `db:"name"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	PropertyToken *string   `db:"property_token"`
	Price         float64   `db:"price"`
	Latitude      *float64  `db:"latitude"`
	Longitude     *float64  `db:"longitude"`
	Country       string    `db:"country"`
	City          string    `db:"city"`
}
