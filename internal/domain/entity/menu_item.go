package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem es un producto vendible de cara al cliente, opcionalmente ligado a una
// receta (RecipeID débil, anulable). Las variaciones viven como JSON en la fila.
type MenuItem struct {
	ID          int64
	Name        string
	RecipeID    *int64
	Price       decimal.Decimal
	Description string
	Variations  []VariationGroup
	Category    string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// VariationGroup agrupa opciones excluyentes o acumulables de un MenuItem
// (ej. "Tamaño", "Extras"). Se serializa como JSON en menu_items.variations.
type VariationGroup struct {
	Name    string            `json:"name"`
	Options []VariationOption `json:"options"`
}

// VariationOption es una opción seleccionable en venta. PriceDelta ajusta el
// precio; IngredientMapping (opcional) altera el consumo de inventario.
type VariationOption struct {
	Name              string             `json:"name"`
	PriceDelta        decimal.Decimal    `json:"priceDelta"`
	IngredientMapping *IngredientMapping `json:"ingredientMapping,omitempty"`
}

// IngredientMapping es el único mecanismo por el que una opción de variación
// cambia el consumo de inventario: agrega InventoryItem y, si IsReplacement,
// elimina por completo la línea base ReplaceTarget del descuento.
type IngredientMapping struct {
	InventoryItem string          `json:"inventoryItem"`
	Quantity      decimal.Decimal `json:"quantity"` // por unidad vendida; cero = default 1
	Unit          string          `json:"unit"`     // vacío = pieza
	IsReplacement bool            `json:"isReplacement"`
	ReplaceTarget string          `json:"replaceTarget,omitempty"`
}
