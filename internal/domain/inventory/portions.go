package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// MaxPortions calcula cuántas veces puede prepararse una receta con el stock
// disponible: el mínimo de floor(disponible/requerido) entre sus ingredientes.
// Ingredientes con cantidad requerida no positiva no restringen. Si ningún
// ingrediente restringe, constrained es false y portions no es significativo.
//
// El resultado puede ser negativo cuando hay sobreconsumo; el recorte a cero es
// responsabilidad de la capa de presentación.
func MaxPortions(onHand func(productName string) decimal.Decimal, ingredients []entity.RecipeIngredient) (portions int64, constrained bool) {
	for _, ing := range ingredients {
		if !ing.Quantity.IsPositive() {
			continue
		}
		available := onHand(ing.ProductName)
		p := available.Div(ing.Quantity).Floor().IntPart()
		if !constrained || p < portions {
			portions = p
			constrained = true
		}
	}
	return portions, constrained
}
