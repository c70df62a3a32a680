package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerName     string                `json:"customerName"`
	CustomerPhone    string                `json:"customerPhone,omitempty"`
	DeliveryTime     string                `json:"deliveryTime,omitempty"`
	DeliveryLocation string                `json:"deliveryLocation,omitempty"`
	PaymentMethod    string                `json:"paymentMethod,omitempty"`
	Notes            string                `json:"notes,omitempty"`
	Total            decimal.Decimal       `json:"total"`
	Items            []SoldLineItemRequest `json:"items"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse respuesta de lectura de pedido.
type OrderResponse struct {
	ID               int64           `json:"id"`
	CustomerName     string          `json:"customerName"`
	CustomerPhone    string          `json:"customerPhone,omitempty"`
	DeliveryTime     string          `json:"deliveryTime,omitempty"`
	DeliveryLocation string          `json:"deliveryLocation,omitempty"`
	PaymentMethod    string          `json:"paymentMethod,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Status           string          `json:"status"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// NewOrderResponse mapea la entidad a la respuesta.
func NewOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		DeliveryTime:     o.DeliveryTime,
		DeliveryLocation: o.DeliveryLocation,
		PaymentMethod:    o.PaymentMethod,
		Notes:            o.Notes,
		Status:           o.Status,
		Total:            o.Total,
		CreatedAt:        o.CreatedAt,
	}
}
