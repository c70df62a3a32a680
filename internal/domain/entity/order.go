package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusNew        = "Nuevo"
	OrderStatusPreparing  = "En preparación"
	OrderStatusDelivering = "En entrega"
	OrderStatusCompleted  = "Completado"
)

// Order es un pedido para entrega posterior (no venta de mostrador).
type Order struct {
	ID               int64
	CustomerName     string
	CustomerPhone    string
	DeliveryTime     string // texto libre, ej. "14:30"
	DeliveryLocation string
	PaymentMethod    string
	Notes            string
	Status           string
	Total            decimal.Decimal
	CreatedAt        time.Time
	DeletedAt        *time.Time
}

// OrderItem es una línea de pedido. Options conserva las etiquetas de variación
// elegidas por el cliente (texto libre).
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Notes       string
	Options     []string
}
