package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	Create(ctx context.Context, req *request.CreateHotelRequest) (*entity.Hotel, error)
	List(ctx context.Context, owner request.Owner) ([]*entity.Hotel, error)
	Get(ctx context.Context, id uuid.UUID, owner request.Owner) (*entity.Hotel, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateHotelRequest) (*entity.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{repo: repo, log: log, now: time.Now}
}

func (s *hotelService) Create(ctx context.Context, req *request.CreateHotelRequest) (*entity.Hotel, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	var details []string
	if req.Name == "" {
		details = append(details, "name is required")
	}
	if req.CheckInDate == "" {
		details = append(details, "check_in_date is required")
	}
	if req.CheckOutDate == "" {
		details = append(details, "check_out_date is required")
	}
	if req.Country == "" {
		details = append(details, "country is required")
	}
	if req.City == "" {
		details = append(details, "city is required")
	}
	if req.Price == nil {
		details = append(details, "price is required")
	} else if *req.Price < 0 {
		details = append(details, "price must be a non-negative number")
	}
	if len(details) > 0 {
		return nil, NewValidationError(details...)
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, NewValidationError("check_in_date must be a valid date")
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, NewValidationError("check_out_date must be a valid date")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check_out_date must be after check_in_date")
	}

	now := s.now()
	hotel := &entity.Hotel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        user.ID,
		Name:          req.Name,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		PropertyToken: req.PropertyToken,
		Price:         *req.Price,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Country:       req.Country,
		City:          req.City,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel booking created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("user_id", user.ID.String()))

	return hotel, nil
}

func (s *hotelService) List(ctx context.Context, owner request.Owner) ([]*entity.Hotel, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotel.FindAllByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	return hotels, nil
}

func (s *hotelService) Get(ctx context.Context, id uuid.UUID, owner request.Owner) (*entity.Hotel, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}

	return hotel, nil
}

func (s *hotelService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateHotelRequest) (*entity.Hotel, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.CheckInDate == nil && req.CheckOutDate == nil &&
		req.PropertyToken == nil && req.Price == nil && req.Latitude == nil &&
		req.Longitude == nil && req.Country == nil && req.City == nil {
		return nil, NewValidationError("No fields provided for update")
	}

	hotel, err := s.repo.Hotel.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.CheckInDate != nil {
		t, err := parseDate(*req.CheckInDate)
		if err != nil {
			return nil, NewValidationError("check_in_date must be a valid date")
		}
		hotel.CheckInDate = t
	}
	if req.CheckOutDate != nil {
		t, err := parseDate(*req.CheckOutDate)
		if err != nil {
			return nil, NewValidationError("check_out_date must be a valid date")
		}
		hotel.CheckOutDate = t
	}
	if !hotel.CheckOutDate.After(hotel.CheckInDate) {
		return nil, NewValidationError("check_out_date must be after check_in_date")
	}
	if req.PropertyToken != nil {
		hotel.PropertyToken = req.PropertyToken
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, NewValidationError("price must be a non-negative number")
		}
		hotel.Price = *req.Price
	}
	if req.Latitude != nil {
		hotel.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		hotel.Longitude = req.Longitude
	}
	if req.Country != nil {
		hotel.Country = *req.Country
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	hotel.UpdatedAt = s.now()

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	return hotel, nil
}

func (s *hotelService) Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Hotel.Delete(ctx, id, user.ID)
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if !deleted {
		return ErrHotelNotFound
	}

	s.log.Info("Hotel booking deleted",
		zap.String("hotel_id", id.String()),
		zap.String("user_id", user.ID.String()))

	return nil
}
