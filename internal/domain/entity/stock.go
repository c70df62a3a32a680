package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock en el resumen de inventario.
const (
	StockStatusLow = "Bajo"
	StockStatusOK  = "Ok"
)

// Estados de alerta por porciones restantes de un platillo.
const (
	AlertStatusOut = "Agotado"
	AlertStatusLow = "Bajo Stock"
)

// StockLevel es una fila del libro de inventario: existencia actual de un
// producto por (producto, unidad, tipo), calculada como compras menos consumos.
// OnHand puede ser negativo (sobreconsumo); no se recorta en esta capa.
type StockLevel struct {
	Product          string
	Unit             string
	Type             string // Insumo, Terminado, Operativo
	TotalPurchased   decimal.Decimal
	TotalUsed        decimal.Decimal
	OnHand           decimal.Decimal
	AvgUnitPrice     decimal.Decimal
	LastPurchaseDate *time.Time
	Status           string // Bajo si OnHand <= 5, si no Ok
}

// PurchaseSummary es el agregado de partidas de compra por (producto, unidad, tipo)
// de tickets no borrados.
type PurchaseSummary struct {
	Product          string
	Unit             string
	Type             string
	TotalQuantity    decimal.Decimal
	AvgUnitPrice     decimal.Decimal
	LastPurchaseDate *time.Time
}

// UsageSummary es el agregado de consumos por nombre de producto.
type UsageSummary struct {
	ProductName   string
	TotalQuantity decimal.Decimal
}

// AlertEntry es una alerta de platillo con pocas porciones servibles.
// PortionsRemaining ya viene recortado a cero para presentación.
type AlertEntry struct {
	MenuItemID        int64  `json:"id"`
	Name              string `json:"name"`
	PortionsRemaining int64  `json:"portionsRemaining"`
	Status            string `json:"status"` // Agotado o Bajo Stock
}
