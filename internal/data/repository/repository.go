package repository

import (
	"github.com/Colin-Stark/travelwise-server/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Flight    FlightRepository
	Hotel     HotelRepository
	Itinerary ItineraryRepository
	Expense   ExpenseRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Flight:    NewFlightRepository(db, log),
		Hotel:     NewHotelRepository(db, log),
		Itinerary: NewItineraryRepository(db, log),
		Expense:   NewExpenseRepository(db, log),
	}
}
