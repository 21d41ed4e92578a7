package entity

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	ExpenseCategoryFood      ExpenseCategory = "food"
	ExpenseCategoryTransport ExpenseCategory = "transport"
	ExpenseCategoryLodging   ExpenseCategory = "lodging"
	ExpenseCategoryTickets   ExpenseCategory = "tickets"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodOther PaymentMethod = "other"
)

type Expense struct {
	BaseSimple
	UserID        uuid.UUID       `db:"user_id"`
	ItineraryID   *uuid.UUID      `db:"itinerary_id"`
	Category      ExpenseCategory `db:"category"`
	Amount        float64         `db:"amount"`
	Currency      string          `db:"currency"`
	Date          time.Time       `db:"date"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Merchant      *string         `db:"merchant"`
	ReceiptURL    *string         `db:"receipt_url"`
	Notes         *string         `db:"notes"`
}
