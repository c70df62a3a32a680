package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta de mostrador. PaymentMethod incluye 'CXC' (venta a crédito)
// y 'Cortesía'. Borrado lógico vía DeletedAt; sus consumos de inventario quedan
// ligados por UsageRecord.SaleID.
type Sale struct {
	ID            int64
	Total         decimal.Decimal
	PaymentMethod string // Efectivo, Tarjeta, Transferencia, CXC, Cortesía
	CustomerName  string
	CustomerPhone string
	CreatedAt     time.Time
	DeletedAt     *time.Time
	UserID        *int64
}

// SaleItem es una línea de venta persistida.
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}
