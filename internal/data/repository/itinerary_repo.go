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

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *entity.Itinerary) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Itinerary, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error)
	Update(ctx context.Context, itinerary *entity.Itinerary) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type itineraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItineraryRepository(db database.PgxIface, log *zap.Logger) ItineraryRepository {
	return &itineraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "itinerary")),
	}
}

const itineraryColumns = `id, user_id, external_id, gl, title, start_date,
	end_date, country, city, description, img, flight, hotel, schedules,
	created_at, updated_at`

func (ir *itineraryRepository) scanRow(row pgx.Row) (*entity.Itinerary, error) {
	var it entity.Itinerary
	err := row.Scan(
		&it.ID,
		&it.UserID,
		&it.ExternalID,
		&it.GL,
		&it.Title,
		&it.StartDate,
		&it.EndDate,
		&it.Country,
		&it.City,
		&it.Description,
		&it.Img,
		&it.Flight,
		&it.Hotel,
		&it.Schedules,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (ir *itineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	query := `
		INSERT INTO itineraries (id, user_id, external_id, gl, title,
		                         start_date, end_date, country, city,
		                         description, img, flight, hotel, schedules,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := ir.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.UserID,
		itinerary.ExternalID,
		itinerary.GL,
		itinerary.Title,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Country,
		itinerary.City,
		itinerary.Description,
		itinerary.Img,
		itinerary.Flight,
		itinerary.Hotel,
		itinerary.Schedules,
		itinerary.CreatedAt,
		itinerary.UpdatedAt,
	)

	if err != nil {
		ir.log.Error("Failed to create itinerary",
			zap.Error(err),
			zap.String("user_id", itinerary.UserID.String()),
		)
		return fmt.Errorf("create itinerary for user %s: %w", itinerary.UserID.String(), err)
	}

	return nil
}

func (ir *itineraryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = $1 AND user_id = $2`

	it, err := ir.scanRow(ir.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find itinerary",
			zap.Error(err),
			zap.String("itinerary_id", id.String()),
		)
		return nil, fmt.Errorf("find itinerary %s: %w", id.String(), err)
	}

	return it, nil
}

func (ir *itineraryRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE user_id = $1 ORDER BY start_date`

	rows, err := ir.db.Query(ctx, query, userID)
	if err != nil {
		ir.log.Error("Failed to list itineraries",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list itineraries for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var itineraries []*entity.Itinerary
	for rows.Next() {
		it, err := ir.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan itinerary row: %w", err)
		}
		itineraries = append(itineraries, it)
	}

	return itineraries, rows.Err()
}

func (ir *itineraryRepository) Update(ctx context.Context, itinerary *entity.Itinerary) error {
	query := `
		UPDATE itineraries
		SET gl = $3, title = $4, start_date = $5, end_date = $6, country = $7,
		    city = $8, description = $9, img = $10, flight = $11, hotel = $12,
		    schedules = $13, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := ir.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.UserID,
		itinerary.GL,
		itinerary.Title,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Country,
		itinerary.City,
		itinerary.Description,
		itinerary.Img,
		itinerary.Flight,
		itinerary.Hotel,
		itinerary.Schedules,
	)
	if err != nil {
		ir.log.Error("Failed to update itinerary",
			zap.Error(err),
			zap.String("itinerary_id", itinerary.ID.String()),
		)
		return fmt.Errorf("update itinerary %s: %w", itinerary.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update itinerary %s: not found", itinerary.ID.String())
	}

	return nil
}

func (ir *itineraryRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM itineraries WHERE id = $1 AND user_id = $2`

	result, err := ir.db.Exec(ctx, query, id, userID)
	if err != nil {
		ir.log.Error("Failed to delete itinerary",
			zap.Error(err),
			zap.String("itinerary_id", id.String()),
		)
		return false, fmt.Errorf("delete itinerary %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
