package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// TicketRequest body para POST /api/tickets.
type TicketRequest struct {
	TicketRef     string          `json:"ticketRef"`
	Provider      string          `json:"provider"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PurchaseDate  *time.Time      `json:"purchaseDate,omitempty"`
}

// TicketItemRequest partida en PUT /api/tickets/:id/breakdown.
type TicketItemRequest struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Type      string          `json:"type,omitempty"` // Insumo, Terminado, Operativo
}

// BreakdownRequest body del desglose completo de un ticket.
type BreakdownRequest struct {
	Items []TicketItemRequest `json:"items"`
}

// TicketResponse ticket de compra.
type TicketResponse struct {
	ID            int64           `json:"id"`
	TicketRef     string          `json:"ticketRef"`
	Provider      string          `json:"provider"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	PurchaseDate  *time.Time      `json:"purchaseDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewTicketResponse mapea la entidad a la respuesta.
func NewTicketResponse(t *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		TicketRef:     t.TicketRef,
		Provider:      t.Provider,
		Total:         t.Total,
		PaymentMethod: t.PaymentMethod,
		Status:        t.Status,
		PurchaseDate:  t.PurchaseDate,
		CreatedAt:     t.CreatedAt,
	}
}
