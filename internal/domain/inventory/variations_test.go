package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// latteVariations arma los grupos de variación típicos de un latte: cambio de
// leche (reemplazo) y shot extra (agregado).
func latteVariations() []entity.VariationGroup {
	return []entity.VariationGroup{
		{
			Name: "Leche",
			Options: []entity.VariationOption{
				{Name: "Entera"}, // default, sin mapeo
				{
					Name:       "Deslactosada",
					PriceDelta: dec("5"),
					IngredientMapping: &entity.IngredientMapping{
						InventoryItem: "Leche Deslactosada",
						Quantity:      dec("0.24"),
						Unit:          "l",
						IsReplacement: true,
						ReplaceTarget: "Leche Entera",
					},
				},
			},
		},
		{
			Name: "Extras",
			Options: []entity.VariationOption{
				{
					Name:       "Shot Extra",
					PriceDelta: dec("10"),
					IngredientMapping: &entity.IngredientMapping{
						InventoryItem: "Café en Grano",
						Quantity:      dec("0.018"),
						Unit:          "kg",
					},
				},
				{Name: "Extra Caliente"}, // sin mapeo: no toca inventario
			},
		},
	}
}

func TestComputeIngredientDelta_SinGruposNiSeleccion(t *testing.T) {
	assert.True(t, inventory.ComputeIngredientDelta(nil, nil).Empty())
	assert.True(t, inventory.ComputeIngredientDelta(latteVariations(), nil).Empty())
	assert.True(t, inventory.ComputeIngredientDelta(nil, []string{"Deslactosada"}).Empty())
}

func TestComputeIngredientDelta_AgregadoSimple(t *testing.T) {
	delta := inventory.ComputeIngredientDelta(latteVariations(), []string{"Shot Extra"})

	require.Len(t, delta.Extra, 1)
	assert.Equal(t, "Café en Grano", delta.Extra[0].ProductName)
	assert.True(t, dec("0.018").Equal(delta.Extra[0].Quantity))
	assert.Equal(t, "kg", delta.Extra[0].Unit)
	assert.Empty(t, delta.Suppress, "un agregado no debe suprimir líneas base")
}

func TestComputeIngredientDelta_Reemplazo(t *testing.T) {
	delta := inventory.ComputeIngredientDelta(latteVariations(), []string{"Deslactosada"})

	require.Len(t, delta.Extra, 1)
	assert.Equal(t, "Leche Deslactosada", delta.Extra[0].ProductName)
	assert.True(t, delta.Suppresses("Leche Entera"),
		"el reemplazo debe eliminar por completo la línea base objetivo")
	assert.False(t, delta.Suppresses("Café en Grano"))
}

// Las etiquetas llegan como texto libre del punto de venta: la comparación es
// trim + case-insensitive.
func TestComputeIngredientDelta_EtiquetasConRuido(t *testing.T) {
	delta := inventory.ComputeIngredientDelta(latteVariations(), []string{"  deslactosada ", "SHOT EXTRA"})

	assert.Len(t, delta.Extra, 2)
	assert.True(t, delta.Suppresses("Leche Entera"))
}

func TestComputeIngredientDelta_OpcionSinMapeoNoAfecta(t *testing.T) {
	delta := inventory.ComputeIngredientDelta(latteVariations(), []string{"Extra Caliente", "Entera"})
	assert.True(t, delta.Empty(), "opciones sin mapeo de ingrediente no afectan inventario")
}

func TestComputeIngredientDelta_DefaultsDeCantidadYUnidad(t *testing.T) {
	groups := []entity.VariationGroup{{
		Name: "Extras",
		Options: []entity.VariationOption{{
			Name: "Galleta",
			IngredientMapping: &entity.IngredientMapping{
				InventoryItem: "Galleta",
				// Quantity cero y Unit vacía: aplican los defaults
			},
		}},
	}}

	delta := inventory.ComputeIngredientDelta(groups, []string{"Galleta"})
	require.Len(t, delta.Extra, 1)
	assert.True(t, decimal.NewFromInt(1).Equal(delta.Extra[0].Quantity))
	assert.Equal(t, inventory.DefaultUnit, delta.Extra[0].Unit)
}

// Dos opciones que agregan el mismo producto aportan líneas separadas; los
// reemplazos sobre el mismo objetivo son idempotentes.
func TestComputeIngredientDelta_MismoProductoNoSeFusiona(t *testing.T) {
	groups := []entity.VariationGroup{{
		Name: "Extras",
		Options: []entity.VariationOption{
			{Name: "Shot Extra", IngredientMapping: &entity.IngredientMapping{
				InventoryItem: "Café en Grano", Quantity: dec("0.018"), Unit: "kg",
			}},
			{Name: "Doble Shot", IngredientMapping: &entity.IngredientMapping{
				InventoryItem: "Café en Grano", Quantity: dec("0.036"), Unit: "kg",
				IsReplacement: true, ReplaceTarget: "Leche Entera",
			}},
			{Name: "Sin Espuma", IngredientMapping: &entity.IngredientMapping{
				InventoryItem: "Agua", IsReplacement: true, ReplaceTarget: "Leche Entera",
			}},
		},
	}}

	delta := inventory.ComputeIngredientDelta(groups, []string{"Shot Extra", "Doble Shot", "Sin Espuma"})
	assert.Len(t, delta.Extra, 3, "cada opción aporta su propia línea")
	assert.Len(t, delta.Suppress, 1, "supresiones repetidas del mismo objetivo colapsan en una")
}

func TestLookupName_PrefiereNombreBase(t *testing.T) {
	assert.Equal(t, "Café Americano", inventory.LookupName("Café Americano", "Café Americano (Grande)"))
	assert.Equal(t, "Café Americano (Grande)", inventory.LookupName("", "Café Americano (Grande)"))
	assert.Equal(t, "Latte", inventory.LookupName("  Latte  ", "x"))
	assert.Equal(t, "", inventory.LookupName("  ", "  "))
}

func TestCaseFoldNames_Canonical(t *testing.T) {
	names := inventory.NewCaseFoldNames()
	assert.Equal(t, "café en grano", names.Canonical("  Café en Grano "))
	// Sin normalización de acentos: "cafe" y "café" son productos distintos
	assert.NotEqual(t, names.Canonical("cafe"), names.Canonical("café"))
}
