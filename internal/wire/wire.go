package wire

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/adaptor"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/mailer"
	"github.com/Colin-Stark/travelwise-server/pkg/middleware"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router from the shared deps.
func Wiring(repo *repository.Repository, mail mailer.Sender, config *utils.Config, log *zap.Logger) *App {
	service := usecase.NewService(repo, mail, config, log)
	handler := adaptor.NewHandler(service, log)

	return &App{
		Router:  SetupRouter(handler, log),
		Service: service,
	}
}

// SetupRouter assembles the full route tree with the shared middleware chain.
func SetupRouter(handler *adaptor.Handler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recover(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to Travelwise API",
		})
	})

	r.Post("/echo", func(w http.ResponseWriter, r *http.Request) {
		var body any
		if r.Body != nil {
			raw, err := io.ReadAll(r.Body)
			if err == nil && len(raw) > 0 {
				if err := json.Unmarshal(raw, &body); err != nil {
					utils.ResponseBadRequest(w, "Invalid JSON body")
					return
				}
			}
		}
		utils.WriteJSON(w, http.StatusOK, map[string]any{"received": body})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Trip endpoints were folded into /api/flights; old clients get a
	// pointer instead of a 404.
	r.HandleFunc("/trip", tripGone)
	r.HandleFunc("/trip/*", tripGone)

	authRoutes(r, handler.Auth)
	userRoutes(r, handler.User)
	flightRoutes(r, handler.Flight)
	hotelRoutes(r, handler.Hotel)
	itineraryRoutes(r, handler.Itinerary)
	expenseRoutes(r, handler.Expense)

	return r
}

func tripGone(w http.ResponseWriter, _ *http.Request) {
	utils.ResponseGone(w, "Trip routes removed, use /api/flights endpoints")
}
