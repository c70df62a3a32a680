package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de desglose de un ticket de compra.
const (
	TicketStatusPending   = "No Desglosado"
	TicketStatusBrokenDown = "Desglosado"
)

// Tipos de partida de un ticket de compra.
const (
	LineTypeInsumo    = "Insumo"    // materia prima para recetas
	LineTypeTerminado = "Terminado" // producto terminado para reventa
	LineTypeOperativo = "Operativo" // gasto operativo, no inventariable
)

// Ticket representa un ticket de compra a proveedor. Se registra primero el total
// y después se "desglosa" en partidas (TicketItem). Borrado lógico vía DeletedAt.
type Ticket struct {
	ID            int64
	TicketRef     string // folio capturado por el usuario, ej. "TKT-2025-0015"
	Provider      string
	Total         decimal.Decimal
	PaymentMethod string
	Status        string // No Desglosado, Desglosado
	PurchaseDate  *time.Time
	CreatedAt     time.Time
	DeletedAt     *time.Time
	UserID        *int64
}

// TicketItem es una partida de compra: aporta cantidad positiva al inventario
// del producto (product, unit). Inmutable salvo re-desglose completo del ticket.
type TicketItem struct {
	ID        int64
	TicketID  int64
	Product   string // nombre libre, vocabulario compartido con recetas y consumos
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Type      string // Insumo, Terminado, Operativo
}
