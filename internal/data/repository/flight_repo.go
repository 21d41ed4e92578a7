package repository

import (
	"context"
	"fmt"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Flight, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Flight, error)
	UpdateDetails(ctx context.Context, flight *entity.Flight) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

func (fr *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, user_id, name, country, city, start_date,
		                     end_date, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := fr.db.Exec(ctx, query,
		flight.ID,
		flight.UserID,
		flight.Name,
		flight.Country,
		flight.City,
		flight.StartDate,
		flight.EndDate,
		flight.Details,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		fr.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("user_id", flight.UserID.String()),
		)
		return fmt.Errorf("create flight for user %s: %w", flight.UserID.String(), err)
	}

	return nil
}

func (fr *flightRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Flight, error) {
	query := `
		SELECT id, user_id, name, country, city, start_date, end_date,
		       details, created_at, updated_at
		FROM flights
		WHERE id = $1 AND user_id = $2
	`

	var flight entity.Flight
	err := fr.db.QueryRow(ctx, query, id, userID).Scan(
		&flight.ID,
		&flight.UserID,
		&flight.Name,
		&flight.Country,
		&flight.City,
		&flight.StartDate,
		&flight.EndDate,
		&flight.Details,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		fr.log.Error("Failed to find flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight %s: %w", id.String(), err)
	}

	return &flight, nil
}

func (fr *flightRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Flight, error) {
	query := `
		SELECT id, user_id, name, country, city, start_date, end_date,
		       details, created_at, updated_at
		FROM flights
		WHERE user_id = $1
		ORDER BY start_date
	`

	rows, err := fr.db.Query(ctx, query, userID)
	if err != nil {
		fr.log.Error("Failed to list flights",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list flights for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		if err := rows.Scan(
			&flight.ID,
			&flight.UserID,
			&flight.Name,
			&flight.Country,
			&flight.City,
			&flight.StartDate,
			&flight.EndDate,
			&flight.Details,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	return flights, rows.Err()
}

// UpdateDetails rewrites the embedded details array in one statement.
func (fr *flightRepository) UpdateDetails(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET details = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := fr.db.Exec(ctx, query, flight.ID, flight.UserID, flight.Details)
	if err != nil {
		fr.log.Error("Failed to update flight details",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update flight %s: not found", flight.ID.String())
	}

	return nil
}
