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

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Hotel, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

func (hr *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, user_id, name, check_in_date, check_out_date,
		                    property_token, price, latitude, longitude,
		                    country, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := hr.db.Exec(ctx, query,
		hotel.ID,
		hotel.UserID,
		hotel.Name,
		hotel.CheckInDate,
		hotel.CheckOutDate,
		hotel.PropertyToken,
		hotel.Price,
		hotel.Latitude,
		hotel.Longitude,
		hotel.Country,
		hotel.City,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		hr.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("user_id", hotel.UserID.String()),
		)
		return fmt.Errorf("create hotel for user %s: %w", hotel.UserID.String(), err)
	}

	return nil
}

func (hr *hotelRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Hotel, error) {
	query := `
		SELECT id, user_id, name, check_in_date, check_out_date, property_token,
		       price, latitude, longitude, country, city, created_at, updated_at
		FROM hotels
		WHERE id = $1 AND user_id = $2
	`

	var hotel entity.Hotel
	err := hr.db.QueryRow(ctx, query, id, userID).Scan(
		&hotel.ID,
		&hotel.UserID,
		&hotel.Name,
		&hotel.CheckInDate,
		&hotel.CheckOutDate,
		&hotel.PropertyToken,
		&hotel.Price,
		&hotel.Latitude,
		&hotel.Longitude,
		&hotel.Country,
		&hotel.City,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		hr.log.Error("Failed to find hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel %s: %w", id.String(), err)
	}

	return &hotel, nil
}

func (hr *hotelRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Hotel, error) {
	query := `
		SELECT id, user_id, name, check_in_date, check_out_date, property_token,
		       price, latitude, longitude, country, city, created_at, updated_at
		FROM hotels
		WHERE user_id = $1
		ORDER BY check_in_date
	`

	rows, err := hr.db.Query(ctx, query, userID)
	if err != nil {
		hr.log.Error("Failed to list hotels",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list hotels for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		var hotel entity.Hotel
		if err := rows.Scan(
			&hotel.ID,
			&hotel.UserID,
			&hotel.Name,
			&hotel.CheckInDate,
			&hotel.CheckOutDate,
			&hotel.PropertyToken,
			&hotel.Price,
			&hotel.Latitude,
			&hotel.Longitude,
			&hotel.Country,
			&hotel.City,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	return hotels, rows.Err()
}

func (hr *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $3, check_in_date = $4, check_out_date = $5,
		    property_token = $6, price = $7, latitude = $8, longitude = $9,
		    country = $10, city = $11, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := hr.db.Exec(ctx, query,
		hotel.ID,
		hotel.UserID,
		hotel.Name,
		hotel.CheckInDate,
		hotel.CheckOutDate,
		hotel.PropertyToken,
		hotel.Price,
		hotel.Latitude,
		hotel.Longitude,
		hotel.Country,
		hotel.City,
	)
	if err != nil {
		hr.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update hotel %s: not found", hotel.ID.String())
	}

	return nil
}

func (hr *hotelRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM hotels WHERE id = $1 AND user_id = $2`

	result, err := hr.db.Exec(ctx, query, id, userID)
	if err != nil {
		hr.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return false, fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
