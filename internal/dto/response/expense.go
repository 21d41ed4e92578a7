package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

type ExpenseResponse struct {
	ID            string                 `json:"_id"`
	UserID        string                 `json:"userId"`
	ItineraryID   *string                `json:"itineraryId,omitempty"`
	Category      entity.ExpenseCategory `json:"category"`
	Amount        float64                `json:"amount"`
	Currency      string                 `json:"currency"`
	Date          time.Time              `json:"date"`
	PaymentMethod entity.PaymentMethod   `json:"paymentMethod"`
	Merchant      *string                `json:"merchant,omitempty"`
	ReceiptURL    *string                `json:"receiptUrl,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func ExpenseToResponse(expense *entity.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:            expense.ID.String(),
		UserID:        expense.UserID.String(),
		Category:      expense.Category,
		Amount:        expense.Amount,
		Currency:      expense.Currency,
		Date:          expense.Date,
		PaymentMethod: expense.PaymentMethod,
		Merchant:      expense.Merchant,
		ReceiptURL:    expense.ReceiptURL,
		Notes:         expense.Notes,
		CreatedAt:     expense.CreatedAt,
	}
	if expense.ItineraryID != nil {
		id := expense.ItineraryID.String()
		resp.ItineraryID = &id
	}
	return resp
}

func ExpensesToResponse(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ExpenseToResponse(e)
	}
	return out
}
