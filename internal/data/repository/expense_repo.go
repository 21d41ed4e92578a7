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

type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID, itineraryID *uuid.UUID) ([]*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type expenseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExpenseRepository(db database.PgxIface, log *zap.Logger) ExpenseRepository {
	return &expenseRepository{
		db:  db,
		log: log.With(zap.String("repository", "expense")),
	}
}

func (er *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, itinerary_id, category, amount,
		                      currency, date, payment_method, merchant,
		                      receipt_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := er.db.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.ItineraryID,
		expense.Category,
		expense.Amount,
		expense.Currency,
		expense.Date,
		expense.PaymentMethod,
		expense.Merchant,
		expense.ReceiptURL,
		expense.Notes,
		expense.CreatedAt,
	)

	if err != nil {
		er.log.Error("Failed to create expense",
			zap.Error(err),
			zap.String("user_id", expense.UserID.String()),
		)
		return fmt.Errorf("create expense for user %s: %w", expense.UserID.String(), err)
	}

	return nil
}

func (er *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	query := `
		SELECT id, user_id, itinerary_id, category, amount, currency, date,
		       payment_method, merchant, receipt_url, notes, created_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`

	var expense entity.Expense
	err := er.db.QueryRow(ctx, query, id, userID).Scan(
		&expense.ID,
		&expense.UserID,
		&expense.ItineraryID,
		&expense.Category,
		&expense.Amount,
		&expense.Currency,
		&expense.Date,
		&expense.PaymentMethod,
		&expense.Merchant,
		&expense.ReceiptURL,
		&expense.Notes,
		&expense.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find expense",
			zap.Error(err),
			zap.String("expense_id", id.String()),
		)
		return nil, fmt.Errorf("find expense %s: %w", id.String(), err)
	}

	return &expense, nil
}

func (er *expenseRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, itineraryID *uuid.UUID) ([]*entity.Expense, error) {
	query := `
		SELECT id, user_id, itinerary_id, category, amount, currency, date,
		       payment_method, merchant, receipt_url, notes, created_at
		FROM expenses
		WHERE user_id = $1 AND ($2::uuid IS NULL OR itinerary_id = $2)
		ORDER BY date
	`

	rows, err := er.db.Query(ctx, query, userID, itineraryID)
	if err != nil {
		er.log.Error("Failed to list expenses",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list expenses for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var expenses []*entity.Expense
	for rows.Next() {
		var expense entity.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.ItineraryID,
			&expense.Category,
			&expense.Amount,
			&expense.Currency,
			&expense.Date,
			&expense.PaymentMethod,
			&expense.Merchant,
			&expense.ReceiptURL,
			&expense.Notes,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		expenses = append(expenses, &expense)
	}

	return expenses, rows.Err()
}

func (er *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	query := `
		UPDATE expenses
		SET itinerary_id = $3, category = $4, amount = $5, currency = $6,
		    date = $7, payment_method = $8, merchant = $9, receipt_url = $10,
		    notes = $11
		WHERE id = $1 AND user_id = $2
	`

	result, err := er.db.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.ItineraryID,
		expense.Category,
		expense.Amount,
		expense.Currency,
		expense.Date,
		expense.PaymentMethod,
		expense.Merchant,
		expense.ReceiptURL,
		expense.Notes,
	)
	if err != nil {
		er.log.Error("Failed to update expense",
			zap.Error(err),
			zap.String("expense_id", expense.ID.String()),
		)
		return fmt.Errorf("update expense %s: %w", expense.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update expense %s: not found", expense.ID.String())
	}

	return nil
}

func (er *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	result, err := er.db.Exec(ctx, query, id, userID)
	if err != nil {
		er.log.Error("Failed to delete expense",
			zap.Error(err),
			zap.String("expense_id", id.String()),
		)
		return false, fmt.Errorf("delete expense %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
