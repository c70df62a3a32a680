package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedExpense es un gasto fijo recurrente del negocio (renta, luz, nómina).
type FixedExpense struct {
	ID            int64
	Concept       string
	Amount        decimal.Decimal
	PaidTo        string
	PaymentMethod string
	Frequency     string // Mensual, Bimestral, Anual, ...
	ExpenseDate   time.Time
	CreatedAt     time.Time
	DeletedAt     *time.Time
	UserID        *int64
}
