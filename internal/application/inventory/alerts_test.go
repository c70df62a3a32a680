package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

func newAlertsUC(menu *fakeMenuRepo, recipes *fakeRecipeRepo, ledger *fakeLedgerRepo) *inventory.AlertsUseCase {
	log := logger.Nop()
	names := domaininv.CaseFoldNames{}
	return inventory.NewAlertsUseCase(menu, recipes, inventory.NewLedgerUseCase(ledger, names, log), names, log)
}

func TestComputeAlerts_PorcionesServibles(t *testing.T) {
	menu := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 1, Name: "Latte", RecipeID: i64(1), IsActive: true},
		{ID: 2, Name: "Capuchino", RecipeID: i64(2), IsActive: true},
		{ID: 3, Name: "Té", RecipeID: i64(3), IsActive: true},
		{ID: 4, Name: "Agua Embotellada", IsActive: true}, // sin receta: no participa
	}}
	recipes := &fakeRecipeRepo{ingredients: map[int64][]*entity.RecipeIngredient{
		1: {{ProductName: "Café en Grano", Quantity: dec("1"), Unit: "pza"}},
		2: {{ProductName: "Café en Grano", Quantity: dec("5"), Unit: "pza"}},
		3: {{ProductName: "Té Verde", Quantity: dec("1"), Unit: "pza"}},
	}}
	ledger := &fakeLedgerRepo{
		purchases: []*entity.PurchaseSummary{
			{Product: "Café en Grano", Unit: "pza", Type: "Insumo", TotalQuantity: dec("2")},
			{Product: "Té Verde", Unit: "pza", Type: "Insumo", TotalQuantity: dec("40")},
		},
	}

	alerts, err := newAlertsUC(menu, recipes, ledger).ComputeAlerts(inventory.DefaultAlertThreshold)
	require.NoError(t, err)

	byName := map[string]*entity.AlertEntry{}
	for _, a := range alerts {
		byName[a.Name] = a
	}
	require.Len(t, alerts, 2)

	latte := byName["Latte"]
	require.NotNil(t, latte, "2 porciones restantes está en el umbral")
	assert.Equal(t, int64(2), latte.PortionsRemaining)
	assert.Equal(t, entity.AlertStatusLow, latte.Status)

	capuchino := byName["Capuchino"]
	require.NotNil(t, capuchino, "floor(2/5) = 0 porciones")
	assert.Equal(t, int64(0), capuchino.PortionsRemaining)
	assert.Equal(t, entity.AlertStatusOut, capuchino.Status)

	assert.Nil(t, byName["Té"], "40 porciones no alertan")
}

// El sobreconsumo deja porciones negativas: se reporta Agotado con cero, nunca
// un número negativo de cara al usuario.
func TestComputeAlerts_SobreconsumoSeRecortaACero(t *testing.T) {
	menu := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 1, Name: "Latte", RecipeID: i64(1), IsActive: true},
	}}
	recipes := &fakeRecipeRepo{ingredients: map[int64][]*entity.RecipeIngredient{
		1: {{ProductName: "Leche Entera", Quantity: dec("0.24"), Unit: "l"}},
	}}
	ledger := &fakeLedgerRepo{
		purchases: []*entity.PurchaseSummary{
			{Product: "Leche Entera", Unit: "l", Type: "Insumo", TotalQuantity: dec("1")},
		},
		usage: []*entity.UsageSummary{
			{ProductName: "Leche Entera", TotalQuantity: dec("3")},
		},
	}

	alerts, err := newAlertsUC(menu, recipes, ledger).ComputeAlerts(inventory.DefaultAlertThreshold)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertStatusOut, alerts[0].Status)
	assert.Equal(t, int64(0), alerts[0].PortionsRemaining)
}

func TestComputeAlerts_RecetaSinIngredientesNoAlerta(t *testing.T) {
	menu := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 1, Name: "Refresco", RecipeID: i64(7), IsActive: true},
	}}
	recipes := &fakeRecipeRepo{ingredients: map[int64][]*entity.RecipeIngredient{}}
	ledger := &fakeLedgerRepo{}

	alerts, err := newAlertsUC(menu, recipes, ledger).ComputeAlerts(inventory.DefaultAlertThreshold)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestComputeAlerts_SinPlatillosDevuelveListaVacia(t *testing.T) {
	alerts, err := newAlertsUC(&fakeMenuRepo{}, &fakeRecipeRepo{}, &fakeLedgerRepo{}).ComputeAlerts(2)
	require.NoError(t, err)
	assert.NotNil(t, alerts, "lista vacía, no nil: el handler la serializa como []")
	assert.Empty(t, alerts)
}
