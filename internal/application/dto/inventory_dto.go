package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// StockLevelResponse fila del resumen de inventario. TotalQuantity repite la
// existencia actual: el frontend histórico espera ese nombre para mostrarla.
type StockLevelResponse struct {
	Product          string          `json:"product"`
	Unit             string          `json:"unit"`
	Type             string          `json:"type"`
	TotalQuantity    decimal.Decimal `json:"totalQuantity"`
	TotalInput       decimal.Decimal `json:"totalInput"`
	TotalUsed        decimal.Decimal `json:"totalUsed"`
	CurrentStock     decimal.Decimal `json:"currentStock"`
	AvgUnitPrice     decimal.Decimal `json:"avgUnitPrice"`
	LastPurchaseDate *time.Time      `json:"lastPurchaseDate,omitempty"`
	Status           string          `json:"status"`
}

// NewStockLevelResponse mapea una fila del libro a la respuesta.
func NewStockLevelResponse(l *entity.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		Product:          l.Product,
		Unit:             l.Unit,
		Type:             l.Type,
		TotalQuantity:    l.OnHand,
		TotalInput:       l.TotalPurchased,
		TotalUsed:        l.TotalUsed,
		CurrentStock:     l.OnHand,
		AvgUnitPrice:     l.AvgUnitPrice,
		LastPurchaseDate: l.LastPurchaseDate,
		Status:           l.Status,
	}
}
