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

type ExpenseService interface {
	Create(ctx context.Context, req *request.CreateExpenseRequest) (*entity.Expense, error)
	List(ctx context.Context, req *request.ListExpensesRequest) ([]*entity.Expense, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateExpenseRequest) (*entity.Expense, error)
	Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error
}

type expenseService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewExpenseService(repo *repository.Repository, log *zap.Logger) ExpenseService {
	return &expenseService{repo: repo, log: log, now: time.Now}
}

func parseCategory(s string) (entity.ExpenseCategory, error) {
	switch entity.ExpenseCategory(s) {
	case entity.ExpenseCategoryFood, entity.ExpenseCategoryTransport,
		entity.ExpenseCategoryLodging, entity.ExpenseCategoryTickets,
		entity.ExpenseCategoryOther:
		return entity.ExpenseCategory(s), nil
	}
	return "", NewValidationError("category must be one of food, transport, lodging, tickets, other")
}

func parsePaymentMethod(s string) (entity.PaymentMethod, error) {
	switch entity.PaymentMethod(s) {
	case entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodOther:
		return entity.PaymentMethod(s), nil
	}
	return "", NewValidationError("paymentMethod must be one of cash, card, other")
}

func (s *expenseService) Create(ctx context.Context, req *request.CreateExpenseRequest) (*entity.Expense, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	var details []string
	if req.Category == "" {
		details = append(details, "category is required")
	}
	if req.Amount == nil {
		details = append(details, "amount is required")
	} else if *req.Amount < 0 {
		details = append(details, "amount must be a non-negative number")
	}
	if req.Date == "" {
		details = append(details, "date is required")
	}
	if len(details) > 0 {
		return nil, NewValidationError(details...)
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, NewValidationError("date must be a valid date")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	method := entity.PaymentMethodCard
	if req.PaymentMethod != "" {
		if method, err = parsePaymentMethod(req.PaymentMethod); err != nil {
			return nil, err
		}
	}

	var itineraryID *uuid.UUID
	if req.ItineraryID != nil && *req.ItineraryID != "" {
		id, err := uuid.Parse(*req.ItineraryID)
		if err != nil {
			return nil, NewValidationError("itineraryId must be a valid id")
		}
		itinerary, err := s.repo.Itinerary.FindByIDAndUser(ctx, id, user.ID)
		if err != nil {
			return nil, fmt.Errorf("find itinerary: %w", err)
		}
		if itinerary == nil {
			return nil, ErrItineraryNotFound
		}
		itineraryID = &id
	}

	expense := &entity.Expense{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		UserID:        user.ID,
		ItineraryID:   itineraryID,
		Category:      category,
		Amount:        *req.Amount,
		Currency:      currency,
		Date:          date,
		PaymentMethod: method,
		Merchant:      req.Merchant,
		ReceiptURL:    req.ReceiptURL,
		Notes:         req.Notes,
	}

	if err := s.repo.Expense.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.log.Info("Expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("category", string(expense.Category)))

	return expense, nil
}

func (s *expenseService) List(ctx context.Context, req *request.ListExpensesRequest) ([]*entity.Expense, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	var itineraryID *uuid.UUID
	if req.ItineraryID != nil && *req.ItineraryID != "" {
		id, err := uuid.Parse(*req.ItineraryID)
		if err != nil {
			return nil, NewValidationError("itineraryId must be a valid id")
		}
		itineraryID = &id
	}

	expenses, err := s.repo.Expense.FindAllByUser(ctx, user.ID, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return expenses, nil
}

func (s *expenseService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateExpenseRequest) (*entity.Expense, error) {
	user, err := resolveOwner(ctx, s.repo.User, req.Owner)
	if err != nil {
		return nil, err
	}

	if req.Category == nil && req.Amount == nil && req.Currency == nil &&
		req.Date == nil && req.PaymentMethod == nil && req.Merchant == nil &&
		req.ReceiptURL == nil && req.Notes == nil {
		return nil, NewValidationError("No fields provided for update")
	}

	expense, err := s.repo.Expense.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find expense: %w", err)
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		expense.Category = category
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, NewValidationError("amount must be a non-negative number")
		}
		expense.Amount = *req.Amount
	}
	if req.Currency != nil {
		expense.Currency = *req.Currency
	}
	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			return nil, NewValidationError("date must be a valid date")
		}
		expense.Date = t
	}
	if req.PaymentMethod != nil {
		method, err := parsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return nil, err
		}
		expense.PaymentMethod = method
	}
	if req.Merchant != nil {
		expense.Merchant = req.Merchant
	}
	if req.ReceiptURL != nil {
		expense.ReceiptURL = req.ReceiptURL
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}

	if err := s.repo.Expense.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, id uuid.UUID, owner request.Owner) error {
	user, err := resolveOwner(ctx, s.repo.User, owner)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Expense.Delete(ctx, id, user.ID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if !deleted {
		return ErrExpenseNotFound
	}

	s.log.Info("Expense deleted",
		zap.String("expense_id", id.String()),
		zap.String("user_id", user.ID.String()))

	return nil
}
