package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe es la composición costeada de ingredientes que produce una unidad vendible.
// Es dueña de sus ingredientes (borrado en cascada). MenuItem la referencia por ID,
// nunca al revés.
type Recipe struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Category  string
	IsPublic  bool
	CreatedAt time.Time
	DeletedAt *time.Time
}

// RecipeIngredient indica cuánto producto consume una unidad de la receta.
// ProductName es una llave de texto libre contra el vocabulario de TicketItem.Product
// y UsageRecord.ProductName; no hay catálogo rígido de productos.
type RecipeIngredient struct {
	ID          int64
	RecipeID    int64
	ProductName string
	Quantity    decimal.Decimal // por unidad producida
	Unit        string
}
