package dto

import (
	"time"

	"github.com/shopspring/decimal"
	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// SoldLineMetadata datos auxiliares de una línea vendida. CxcID viene poblado
// en líneas de abono a deuda ("cxc_payment").
type SoldLineMetadata struct {
	CxcID *FlexInt64 `json:"cxcId,omitempty"`
}

// SoldLineItemRequest es una línea vendida tal como la manda el punto de venta.
// ProductName puede venir decorado con la variación; BaseName es el nombre de
// catálogo. Options son etiquetas de variación en texto libre.
type SoldLineItemRequest struct {
	ProductName string            `json:"productName"`
	BaseName    string            `json:"baseName,omitempty"`
	Quantity    decimal.Decimal   `json:"quantity"`
	UnitPrice   decimal.Decimal   `json:"unitPrice"`
	Total       decimal.Decimal   `json:"total"`
	Options     []string          `json:"options,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Type        string            `json:"type,omitempty"`
	Metadata    *SoldLineMetadata `json:"metadata,omitempty"`
}

// ToSoldLineItem convierte la línea al tipo de aplicación.
func (r SoldLineItemRequest) ToSoldLineItem() appinv.SoldLineItem {
	item := appinv.SoldLineItem{
		ProductName: r.ProductName,
		BaseName:    r.BaseName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Total:       r.Total,
		Options:     r.Options,
		Type:        r.Type,
		Notes:       r.Notes,
	}
	if r.Metadata != nil && r.Metadata.CxcID != nil {
		id := r.Metadata.CxcID.Int64()
		item.CXCID = &id
	}
	return item
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Total         decimal.Decimal       `json:"total"`
	PaymentMethod string                `json:"paymentMethod"`
	CustomerName  string                `json:"customerName,omitempty"`
	CustomerPhone string                `json:"customerPhone,omitempty"`
	Items         []SoldLineItemRequest `json:"items"`
}

// Lines convierte las líneas del request.
func (r CreateSaleRequest) Lines() []appinv.SoldLineItem {
	out := make([]appinv.SoldLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToSoldLineItem())
	}
	return out
}

// SaleResponse respuesta de creación/lectura de venta.
type SaleResponse struct {
	ID            int64           `json:"id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewSaleResponse mapea la entidad a la respuesta.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CreatedAt:     s.CreatedAt,
	}
}
