package request

type CreateExpenseRequest struct {
	Owner
	ItineraryID   *string  `json:"itineraryId"`
	Category      string   `json:"category"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
	Date          string   `json:"date"`
	PaymentMethod string   `json:"paymentMethod"`
	Merchant      *string  `json:"merchant"`
	ReceiptURL    *string  `json:"receiptUrl"`
	Notes         *string  `json:"notes"`
}

type ListExpensesRequest struct {
	Owner
	ItineraryID *string `json:"itineraryId"`
}

type UpdateExpenseRequest struct {
	Owner
	Category      *string  `json:"category"`
	Amount        *float64 `json:"amount"`
	Currency      *string  `json:"currency"`
	Date          *string  `json:"date"`
	PaymentMethod *string  `json:"paymentMethod"`
	Merchant      *string  `json:"merchant"`
	ReceiptURL    *string  `json:"receiptUrl"`
	Notes         *string  `json:"notes"`
}
