package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// ExpenseRequest body para POST /api/expenses.
type ExpenseRequest struct {
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	PaidTo        string          `json:"paidTo"`
	PaymentMethod string          `json:"paymentMethod"`
	Frequency     string          `json:"frequency"`
	ExpenseDate   time.Time       `json:"expenseDate"`
}

// ExpenseResponse gasto fijo.
type ExpenseResponse struct {
	ID            int64           `json:"id"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	PaidTo        string          `json:"paidTo"`
	PaymentMethod string          `json:"paymentMethod"`
	Frequency     string          `json:"frequency"`
	ExpenseDate   time.Time       `json:"expenseDate"`
}

// NewExpenseResponse mapea la entidad a la respuesta.
func NewExpenseResponse(e *entity.FixedExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Concept:       e.Concept,
		Amount:        e.Amount,
		PaidTo:        e.PaidTo,
		PaymentMethod: e.PaymentMethod,
		Frequency:     e.Frequency,
		ExpenseDate:   e.ExpenseDate,
	}
}
