package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
)

func stockOf(m map[string]decimal.Decimal) func(string) decimal.Decimal {
	return func(product string) decimal.Decimal { return m[product] }
}

func TestMaxPortions_MinimoEntreIngredientes(t *testing.T) {
	stock := stockOf(map[string]decimal.Decimal{
		"Café en Grano": dec("0.10"), // alcanza para 5 porciones de 0.018
		"Leche Entera":  dec("0.50"), // alcanza para 2 porciones de 0.24
	})
	ingredients := []entity.RecipeIngredient{
		{ProductName: "Café en Grano", Quantity: dec("0.018"), Unit: "kg"},
		{ProductName: "Leche Entera", Quantity: dec("0.24"), Unit: "l"},
	}

	portions, constrained := inventory.MaxPortions(stock, ingredients)
	assert.True(t, constrained)
	assert.Equal(t, int64(2), portions, "manda el ingrediente más escaso")
}

func TestMaxPortions_SobreconsumoDaNegativo(t *testing.T) {
	stock := stockOf(map[string]decimal.Decimal{"Leche Entera": dec("-0.5")})
	ingredients := []entity.RecipeIngredient{
		{ProductName: "Leche Entera", Quantity: dec("0.24"), Unit: "l"},
	}

	portions, constrained := inventory.MaxPortions(stock, ingredients)
	assert.True(t, constrained)
	assert.Less(t, portions, int64(0), "el sobreconsumo no se recorta en esta capa")
}

func TestMaxPortions_ProductoDesconocidoCuentaComoCero(t *testing.T) {
	stock := stockOf(map[string]decimal.Decimal{})
	ingredients := []entity.RecipeIngredient{
		{ProductName: "Vainilla", Quantity: dec("1"), Unit: "pza"},
	}

	portions, constrained := inventory.MaxPortions(stock, ingredients)
	assert.True(t, constrained)
	assert.Equal(t, int64(0), portions)
}

// Ingredientes con cantidad requerida no positiva no restringen; si ninguno
// restringe, constrained es false.
func TestMaxPortions_IngredientesNoPositivosNoRestringen(t *testing.T) {
	stock := stockOf(map[string]decimal.Decimal{"Hielo": dec("100")})
	ingredients := []entity.RecipeIngredient{
		{ProductName: "Hielo", Quantity: decimal.Zero, Unit: "pza"},
	}

	_, constrained := inventory.MaxPortions(stock, ingredients)
	assert.False(t, constrained)

	_, constrained = inventory.MaxPortions(stock, nil)
	assert.False(t, constrained)
}
