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

type ItineraryService interface {
	Create(ctx context.Context, req *request.CreateItineraryRequest) (*entity.Itinerary, error)
	List(ctx context.Context, owner request.Owner) ([]*entity.Itinerary, error)
	Get(ctx context.Context, id uuid.UUID, owner request.Owner) (*entity.Itinerary, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateItineraryRequest) (*entity.Itinerary, error)
	Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error
}

type itineraryService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewItineraryService(repo *repository.Repository, log *zap.Logger) ItineraryService {
	return &itineraryService{repo: repo, log: log, now: time.Now}
}

func validateEmbeddedPrices(flight *entity.ItineraryFlight, hotel *entity.ItineraryHotel) error {
	if flight != nil && flight.Price != nil && *flight.Price < 0 {
		return NewValidationError("flight price must be a non-negative number")
	}
	if hotel != nil && hotel.Price != nil && *hotel.Price < 0 {
		return NewValidationError("hotel price must be a non-negative number")
	}
	return nil
}

func (s *itineraryService) Create(ctx context.Context, req *request.CreateItineraryRequest) (*entity.Itinerary, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	var details []string
	if req.Title == "" {
		details = append(details, "title is required")
	}
	if req.StartDate == "" {
		details = append(details, "start_date is required")
	}
	if req.EndDate == "" {
		details = append(details, "end_date is required")
	}
	if req.Country == "" {
		details = append(details, "country is required")
	}
	if req.City == "" {
		details = append(details, "city is required")
	}
	if len(details) > 0 {
		return nil, NewValidationError(details...)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, NewValidationError("start_date must be a valid date")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, NewValidationError("end_date must be a valid date")
	}
	if !endDate.After(startDate) {
		return nil, NewValidationError("end_date must be after start_date")
	}

	if err := validateEmbeddedPrices(req.Flight, req.Hotel); err != nil {
		return nil, err
	}

	now := s.now()
	itinerary := &entity.Itinerary{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      user.ID,
		ExternalID:  now.UnixMilli(),
		GL:          req.GL,
		Title:       req.Title,
		StartDate:   startDate,
		EndDate:     endDate,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Img:         req.Img,
		Flight:      req.Flight,
		Hotel:       req.Hotel,
		Schedules:   req.Schedules,
	}

	if err := s.repo.Itinerary.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("create itinerary: %w", err)
	}

	s.log.Info("Itinerary created",
		zap.String("itinerary_id", itinerary.ID.String()),
		zap.Int64("external_id", itinerary.ExternalID),
		zap.String("user_id", user.ID.String()))

	return itinerary, nil
}

func (s *itineraryService) List(ctx context.Context, owner request.Owner) ([]*entity.Itinerary, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	itineraries, err := s.repo.Itinerary.FindAllByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}

	return itineraries, nil
}

func (s *itineraryService) Get(ctx context.Context, id uuid.UUID, owner request.Owner) (*entity.Itinerary, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	itinerary, err := s.repo.Itinerary.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find itinerary: %w", err)
	}
	if itinerary == nil {
		return nil, ErrItineraryNotFound
	}

	return itinerary, nil
}

func (s *itineraryService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateItineraryRequest) (*entity.Itinerary, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	if req.GL == nil && req.Title == nil && req.StartDate == nil &&
		req.EndDate == nil && req.Country == nil && req.City == nil &&
		req.Description == nil && req.Img == nil && req.Flight == nil &&
		req.Hotel == nil && req.Schedules == nil {
		return nil, NewValidationError("No fields provided for update")
	}

	itinerary, err := s.repo.Itinerary.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find itinerary: %w", err)
	}
	if itinerary == nil {
		return nil, ErrItineraryNotFound
	}

	if req.GL != nil {
		itinerary.GL = req.GL
	}
	if req.Title != nil {
		itinerary.Title = *req.Title
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, NewValidationError("start_date must be a valid date")
		}
		itinerary.StartDate = t
	}
	if req.EndDate != nil {
		t, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, NewValidationError("end_date must be a valid date")
		}
		itinerary.EndDate = t
	}
	if !itinerary.EndDate.After(itinerary.StartDate) {
		return nil, NewValidationError("end_date must be after start_date")
	}
	if req.Country != nil {
		itinerary.Country = *req.Country
	}
	if req.City != nil {
		itinerary.City = *req.City
	}
	if req.Description != nil {
		itinerary.Description = req.Description
	}
	if req.Img != nil {
		itinerary.Img = req.Img
	}
	if err := validateEmbeddedPrices(req.Flight, req.Hotel); err != nil {
		return nil, err
	}
	if req.Flight != nil {
		itinerary.Flight = req.Flight
	}
	if req.Hotel != nil {
		itinerary.Hotel = req.Hotel
	}
	if req.Schedules != nil {
		itinerary.Schedules = req.Schedules
	}
	itinerary.UpdatedAt = s.now()

	if err := s.repo.Itinerary.Update(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("update itinerary: %w", err)
	}

	return itinerary, nil
}

func (s *itineraryService) Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Itinerary.Delete(ctx, id, user.ID)
	if err != nil {
		return fmt.Errorf("delete itinerary: %w", err)
	}
	if !deleted {
		return ErrItineraryNotFound
	}

	s.log.Info("Itinerary deleted",
		zap.String("itinerary_id", id.String()),
		zap.String("user_id", user.ID.String()))

	return nil
}
