package inventory_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// latteFixture arma el escenario clásico: un latte con receta de café y leche
// entera, variación de leche deslactosada (reemplazo) y shot extra (agregado).
func latteFixture() (inventory.TxRepos, *fakeUsageRepo) {
	recipeRepo := &fakeRecipeRepo{
		recipes: []*entity.Recipe{{ID: 1, Name: "Latte"}},
		ingredients: map[int64][]*entity.RecipeIngredient{
			1: {
				{ProductName: "Café en Grano", Quantity: dec("0.018"), Unit: "kg"},
				{ProductName: "Leche Entera", Quantity: dec("0.24"), Unit: "l"},
			},
		},
	}
	menuRepo := &fakeMenuRepo{items: []*entity.MenuItem{{
		ID:       10,
		Name:     "Latte",
		RecipeID: i64(1),
		IsActive: true,
		Variations: []entity.VariationGroup{
			{Name: "Leche", Options: []entity.VariationOption{
				{Name: "Deslactosada", IngredientMapping: &entity.IngredientMapping{
					InventoryItem: "Leche Deslactosada",
					Quantity:      dec("0.24"),
					Unit:          "l",
					IsReplacement: true,
					ReplaceTarget: "Leche Entera",
				}},
			}},
			{Name: "Extras", Options: []entity.VariationOption{
				{Name: "Shot Extra", IngredientMapping: &entity.IngredientMapping{
					InventoryItem: "Café en Grano",
					Quantity:      dec("0.018"),
					Unit:          "kg",
				}},
			}},
		},
	}}}
	usageRepo := &fakeUsageRepo{}
	return inventory.TxRepos{Recipes: recipeRepo, Menu: menuRepo, Usage: usageRepo}, usageRepo
}

func newDeductUC() *inventory.DeductUseCase {
	log := logger.Nop()
	return inventory.NewDeductUseCase(inventory.NewResolver(log), domaininv.CaseFoldNames{}, log)
}

func TestDeductLine_RecetaBaseEscalaPorCantidad(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{ProductName: "Latte", Quantity: dec("2")}

	batchID := uuid.New().String()
	require.NoError(t, newDeductUC().DeductLine(repos, item, i64(55), nil, batchID))

	require.Len(t, usage.records, 2)
	assert.True(t, dec("0.036").Equal(usage.totalFor("Café en Grano")),
		"0.018 kg por unidad x 2 vendidas")
	assert.True(t, dec("0.48").Equal(usage.totalFor("Leche Entera")))
	for _, r := range usage.records {
		assert.Equal(t, batchID, r.BatchID, "todos los asientos comparten el batch de la corrida")
		require.NotNil(t, r.SaleID)
		assert.Equal(t, int64(55), *r.SaleID)
		assert.Nil(t, r.OrderID)
	}
}

func TestDeductLine_ReemplazoSuprimeLineaBase(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{
		ProductName: "Latte (Deslactosada)",
		BaseName:    "Latte",
		Quantity:    dec("1"),
		Options:     []string{"deslactosada"},
	}

	require.NoError(t, newDeductUC().DeductLine(repos, item, i64(55), nil, uuid.New().String()))

	require.Len(t, usage.records, 2)
	assert.True(t, usage.totalFor("Leche Entera").IsZero(),
		"el reemplazo elimina la línea base completa, no la reduce")
	assert.True(t, dec("0.24").Equal(usage.totalFor("Leche Deslactosada")))
	assert.True(t, dec("0.018").Equal(usage.totalFor("Café en Grano")))
}

func TestDeductLine_AgregadoNoSeFusionaConBase(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{
		ProductName: "Latte",
		Quantity:    dec("1"),
		Options:     []string{"Shot Extra"},
	}

	require.NoError(t, newDeductUC().DeductLine(repos, item, i64(55), nil, uuid.New().String()))

	// Línea base de café + línea extra de café + leche: tres asientos
	require.Len(t, usage.records, 3)
	assert.True(t, dec("0.036").Equal(usage.totalFor("Café en Grano")))
}

func TestDeductLine_AbonoCXCNoTocaInventario(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{
		ProductName: "Abono deuda",
		Quantity:    dec("1"),
		Type:        inventory.LineTypeCXCPayment,
		CXCID:       i64(4),
	}

	require.NoError(t, newDeductUC().DeductLine(repos, item, i64(55), nil, uuid.New().String()))
	assert.Empty(t, usage.records)
}

// Una receta faltante es negocio normal (platillo recién dado de alta): la
// línea se omite sin abortar.
func TestDeductLine_RecetaNoResueltaSeOmiteSinError(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{ProductName: "Producto Nuevo", Quantity: dec("1")}

	require.NoError(t, newDeductUC().DeductLine(repos, item, i64(55), nil, uuid.New().String()))
	assert.Empty(t, usage.records)
}

func TestDeductLine_FalloDePersistenciaAborta(t *testing.T) {
	repos, usage := latteFixture()
	usage.createErr = errors.New("conexión perdida")
	item := inventory.SoldLineItem{ProductName: "Latte", Quantity: dec("1")}

	err := newDeductUC().DeductLine(repos, item, i64(55), nil, uuid.New().String())
	require.Error(t, err, "un fallo de inserción debe propagarse para abortar la transacción")
	assert.ErrorIs(t, err, usage.createErr)
}

func TestDeductLine_PedidoLigaOrderID(t *testing.T) {
	repos, usage := latteFixture()
	item := inventory.SoldLineItem{ProductName: "Latte", Quantity: dec("1")}

	require.NoError(t, newDeductUC().DeductLine(repos, item, nil, i64(88), uuid.New().String()))

	require.NotEmpty(t, usage.records)
	for _, r := range usage.records {
		assert.Nil(t, r.SaleID)
		require.NotNil(t, r.OrderID)
		assert.Equal(t, int64(88), *r.OrderID)
	}
}

func TestValidateLineItems(t *testing.T) {
	valid := inventory.SoldLineItem{ProductName: "Latte", Quantity: dec("1")}
	assert.NoError(t, inventory.ValidateLineItems([]inventory.SoldLineItem{valid}))

	sinNombre := inventory.SoldLineItem{ProductName: "   ", Quantity: dec("1")}
	assert.ErrorIs(t, inventory.ValidateLineItems([]inventory.SoldLineItem{sinNombre}), domain.ErrInvalidInput)

	cantidadCero := inventory.SoldLineItem{ProductName: "Latte", Quantity: decimal.Zero}
	assert.ErrorIs(t, inventory.ValidateLineItems([]inventory.SoldLineItem{cantidadCero}), domain.ErrInvalidInput)

	negativa := inventory.SoldLineItem{ProductName: "Latte", Quantity: dec("-1")}
	assert.ErrorIs(t, inventory.ValidateLineItems([]inventory.SoldLineItem{negativa}), domain.ErrInvalidInput)
}
