package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta por cobrar.
const (
	CXCStatusPending = "Pending"
	CXCStatusPaid    = "Paid"
)

// CXC es una cuenta por cobrar: deuda de un cliente originada por una venta a
// crédito. Se liquida marcándola Paid, normalmente mediante una línea de venta
// centinela "cxc_payment" que no toca inventario.
type CXC struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Amount        decimal.Decimal
	SaleID        *int64
	Status        string // Pending, Paid
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PaidAt        *time.Time
	UserID        *int64
}
