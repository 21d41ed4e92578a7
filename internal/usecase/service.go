package usecase

import (
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/pkg/mailer"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every usecase behind one value for wiring.
type Service struct {
	Auth      AuthService
	User      UserService
	Flight    FlightService
	Hotel     HotelService
	Itinerary ItineraryService
	Expense   ExpenseService
}

func NewService(repo *repository.Repository, mail mailer.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, mail, config, log),
		User:      NewUserService(repo, log),
		Flight:    NewFlightService(repo, log),
		Hotel:     NewHotelService(repo, log),
		Itinerary: NewItineraryService(repo, log),
		Expense:   NewExpenseService(repo, log),
	}
}
