package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// CXCRequest body para POST /api/cxc (alta manual de deuda).
type CXCRequest struct {
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	SaleID        *int64          `json:"saleId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CXCResponse cuenta por cobrar.
type CXCResponse struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	SaleID        *int64          `json:"saleId,omitempty"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
}

// NewCXCResponse mapea la entidad a la respuesta.
func NewCXCResponse(c *entity.CXC) CXCResponse {
	return CXCResponse{
		ID:            c.ID,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Amount:        c.Amount,
		SaleID:        c.SaleID,
		Status:        c.Status,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		PaidAt:        c.PaidAt,
	}
}
