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

type FlightService interface {
	Create(ctx context.Context, req *request.CreateFlightRequest) (*entity.Flight, error)
	AddDetail(ctx context.Context, flightID uuid.UUID, req *request.CreateFlightRequest) (*entity.Flight, error)
	ListDetails(ctx context.Context, flightID uuid.UUID, owner request.Owner) (*entity.Flight, error)
	UpdateDetail(ctx context.Context, flightID, detailID uuid.UUID, req *request.UpdateFlightDetailRequest) (*entity.Flight, error)
	DeleteDetail(ctx context.Context, flightID, detailID uuid.UUID, owner request.Owner) (*entity.Flight, error)
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{repo: repo, log: log, now: time.Now}
}

// parsedSegment holds a validated segment before it is written.
type parsedSegment struct {
	departureDate time.Time
	returnDate    time.Time
	status        entity.FlightStatus
}

func (s *flightService) validateSegment(req *request.CreateFlightRequest) (*parsedSegment, error) {
	var details []string

	if req.DepartureDate == "" {
		details = append(details, "departure_date is required")
	}
	if req.ReturnDate == "" {
		details = append(details, "return_date is required")
	}
	if req.DepartureCountry == "" {
		details = append(details, "departure_country is required")
	}
	if req.DepartureCity == "" {
		details = append(details, "departure_city is required")
	}
	if req.ArrivalCountry == "" {
		details = append(details, "arrival_country is required")
	}
	if req.ArrivalCity == "" {
		details = append(details, "arrival_city is required")
	}
	if req.Price == nil {
		details = append(details, "price is required")
	} else if *req.Price < 0 {
		details = append(details, "price must be a non-negative number")
	}
	if len(details) > 0 {
		return nil, NewValidationError(details...)
	}

	parsed := &parsedSegment{status: entity.FlightStatusBooked}

	var err error
	if parsed.departureDate, err = parseDate(req.DepartureDate); err != nil {
		return nil, NewValidationError("departure_date must be a valid date")
	}
	if parsed.returnDate, err = parseDate(req.ReturnDate); err != nil {
		return nil, NewValidationError("return_date must be a valid date")
	}
	if !parsed.returnDate.After(parsed.departureDate) {
		return nil, NewValidationError("return_date must be after departure_date")
	}

	if req.Status != "" {
		switch entity.FlightStatus(req.Status) {
		case entity.FlightStatusBooked, entity.FlightStatusCanceled:
			parsed.status = entity.FlightStatus(req.Status)
		default:
			return nil, NewValidationError("status must be either booked or canceled")
		}
	}

	return parsed, nil
}

func (s *flightService) buildDetail(userID uuid.UUID, req *request.CreateFlightRequest, parsed *parsedSegment) entity.FlightDetail {
	now := s.now()
	return entity.FlightDetail{
		ID:               uuid.New(),
		UserID:           userID,
		DepartureDate:    parsed.departureDate,
		ReturnDate:       parsed.returnDate,
		DepartureCountry: req.DepartureCountry,
		DepartureCity:    req.DepartureCity,
		ArrivalCountry:   req.ArrivalCountry,
		ArrivalCity:      req.ArrivalCity,
		DepartureToken:   req.DepartureToken,
		Price:            *req.Price,
		Status:           parsed.status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (s *flightService) Create(ctx context.Context, req *request.CreateFlightRequest) (*entity.Flight, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	parsed, err := s.validateSegment(req)
	if err != nil {
		return nil, err
	}

	detail := s.buildDetail(user.ID, req, parsed)

	now := s.now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    user.ID,
		Name:      fmt.Sprintf("%s to %s", req.DepartureCity, req.ArrivalCity),
		Country:   req.ArrivalCountry,
		City:      req.ArrivalCity,
		StartDate: parsed.departureDate,
		EndDate:   parsed.returnDate,
		Details:   []entity.FlightDetail{detail},
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("user_id", user.ID.String()))

	return flight, nil
}

func (s *flightService) AddDetail(ctx context.Context, flightID uuid.UUID, req *request.CreateFlightRequest) (*entity.Flight, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	parsed, err := s.validateSegment(req)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByIDAndUser(ctx, flightID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	flight.Details = append(flight.Details, s.buildDetail(user.ID, req, parsed))

	if err := s.repo.Flight.UpdateDetails(ctx, flight); err != nil {
		return nil, fmt.Errorf("append flight detail: %w", err)
	}

	return flight, nil
}

func (s *flightService) ListDetails(ctx context.Context, flightID uuid.UUID, owner request.Owner) (*entity.Flight, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByIDAndUser(ctx, flightID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	return flight, nil
}

func (s *flightService) UpdateDetail(ctx context.Context, flightID, detailID uuid.UUID, req *request.UpdateFlightDetailRequest) (*entity.Flight, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	if req.DepartureDate == nil && req.ReturnDate == nil &&
		req.DepartureCountry == nil && req.DepartureCity == nil &&
		req.ArrivalCountry == nil && req.ArrivalCity == nil &&
		req.DepartureToken == nil && req.Price == nil && req.Status == nil {
		return nil, NewValidationError("No fields provided for update")
	}

	flight, err := s.repo.Flight.FindByIDAndUser(ctx, flightID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	idx := -1
	for i := range flight.Details {
		if flight.Details[i].ID == detailID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrFlightDetailNotFound
	}

	detail := &flight.Details[idx]
	if req.DepartureDate != nil {
		t, err := parseDate(*req.DepartureDate)
		if err != nil {
			return nil, NewValidationError("departure_date must be a valid date")
		}
		detail.DepartureDate = t
	}
	if req.ReturnDate != nil {
		t, err := parseDate(*req.ReturnDate)
		if err != nil {
			return nil, NewValidationError("return_date must be a valid date")
		}
		detail.ReturnDate = t
	}
	if !detail.ReturnDate.After(detail.DepartureDate) {
		return nil, NewValidationError("return_date must be after departure_date")
	}
	if req.DepartureCountry != nil {
		detail.DepartureCountry = *req.DepartureCountry
	}
	if req.DepartureCity != nil {
		detail.DepartureCity = *req.DepartureCity
	}
	if req.ArrivalCountry != nil {
		detail.ArrivalCountry = *req.ArrivalCountry
	}
	if req.ArrivalCity != nil {
		detail.ArrivalCity = *req.ArrivalCity
	}
	if req.DepartureToken != nil {
		detail.DepartureToken = req.DepartureToken
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, NewValidationError("price must be a non-negative number")
		}
		detail.Price = *req.Price
	}
	if req.Status != nil {
		switch entity.FlightStatus(*req.Status) {
		case entity.FlightStatusBooked, entity.FlightStatusCanceled:
			detail.Status = entity.FlightStatus(*req.Status)
		default:
			return nil, NewValidationError("status must be either booked or canceled")
		}
	}
	detail.UpdatedAt = s.now()

	if err := s.repo.Flight.UpdateDetails(ctx, flight); err != nil {
		return nil, fmt.Errorf("update flight detail: %w", err)
	}

	return flight, nil
}

func (s *flightService) DeleteDetail(ctx context.Context, flightID, detailID uuid.UUID, owner request.Owner) (*entity.Flight, error) {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByIDAndUser(ctx, flightID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	kept := flight.Details[:0]
	found := false
	for _, d := range flight.Details {
		if d.ID == detailID {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return nil, ErrFlightDetailNotFound
	}
	flight.Details = kept

	if err := s.repo.Flight.UpdateDetails(ctx, flight); err != nil {
		return nil, fmt.Errorf("delete flight detail: %w", err)
	}

	return flight, nil
}
