package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// DefaultUnit se usa cuando un mapeo de ingrediente no especifica unidad.
const DefaultUnit = "pza"

// IngredientQuantity es una cantidad de producto a consumir por unidad vendida.
type IngredientQuantity struct {
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
}

// IngredientDelta es el efecto de las opciones seleccionadas sobre la lista de
// ingredientes base de una receta: Extra se suma, Suppress elimina por nombre
// la línea base completa (semántica de reemplazo total, no reducción parcial).
type IngredientDelta struct {
	Extra    []IngredientQuantity
	Suppress map[string]struct{}
}

// Empty indica que las opciones no alteran el consumo.
func (d IngredientDelta) Empty() bool {
	return len(d.Extra) == 0 && len(d.Suppress) == 0
}

// Suppresses reporta si productName está marcado para eliminarse de la lista base.
func (d IngredientDelta) Suppresses(productName string) bool {
	_, ok := d.Suppress[productName]
	return ok
}

// ComputeIngredientDelta recorre las variaciones del platillo y calcula el efecto
// de las etiquetas seleccionadas en la venta. Las etiquetas llegan como texto
// libre, por eso la igualdad es trim + case-insensitive.
//
// Opciones seleccionadas sin mapeo de ingrediente (ej. "extra caliente") no
// afectan inventario. Varias opciones que agregan el mismo producto NO se
// fusionan: cada una aporta su propia línea. Varios reemplazos sobre el mismo
// objetivo son idempotentes (conjunto).
func ComputeIngredientDelta(groups []entity.VariationGroup, selected []string) IngredientDelta {
	delta := IngredientDelta{Suppress: make(map[string]struct{})}
	if len(groups) == 0 || len(selected) == 0 {
		return delta
	}

	normalized := make([]string, 0, len(selected))
	for _, s := range selected {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(s)))
	}

	for _, group := range groups {
		for _, opt := range group.Options {
			if !optionSelected(opt.Name, normalized) {
				continue
			}
			m := opt.IngredientMapping
			if m == nil || m.InventoryItem == "" {
				continue
			}
			qty := m.Quantity
			if qty.IsZero() {
				qty = decimal.NewFromInt(1)
			}
			unit := m.Unit
			if unit == "" {
				unit = DefaultUnit
			}
			delta.Extra = append(delta.Extra, IngredientQuantity{
				ProductName: m.InventoryItem,
				Quantity:    qty,
				Unit:        unit,
			})
			if m.IsReplacement && m.ReplaceTarget != "" {
				delta.Suppress[m.ReplaceTarget] = struct{}{}
			}
		}
	}
	return delta
}

func optionSelected(optionName string, normalizedSelection []string) bool {
	want := strings.ToLower(strings.TrimSpace(optionName))
	for _, s := range normalizedSelection {
		if s == want {
			return true
		}
	}
	return false
}
