package adaptor

import (
	"net/http"

	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/dto/response"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type ExpenseHandler struct {
	service usecase.ExpenseService
	log     *zap.Logger
}

func NewExpenseHandler(service usecase.ExpenseService, log *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		log:     log.With(zap.String("handler", "expense")),
	}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	expense, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Expense recorded successfully", response.ExpenseToResponse(expense))
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	var req request.ListExpensesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	expenses, err := h.service.List(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", response.ExpensesToResponse(expenses))
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "expenseId")
	if !ok {
		return
	}

	var req request.UpdateExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	expense, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Expense updated successfully", response.ExpenseToResponse(expense))
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "expenseId")
	if !ok {
		return
	}

	var req request.Owner
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Delete(r.Context(), id, req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Expense deleted successfully", nil)
}
