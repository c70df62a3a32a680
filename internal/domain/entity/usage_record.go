package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageRecord es un asiento de consumo de inventario: resta cantidad del stock
// del producto (ProductName). Solo lo crea el descuento transaccional de
// inventario; es append-only, nunca se actualiza ni borra en el flujo normal.
//
// Exactamente uno de SaleID/OrderID viene poblado en el flujo normal; ambos
// nulos solo en datos sembrados a mano. BatchID agrupa los asientos de una
// misma corrida de descuento.
type UsageRecord struct {
	ID          int64
	BatchID     string // uuid de la corrida de descuento
	SaleID      *int64
	OrderID     *int64
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	CreatedAt   time.Time
}
