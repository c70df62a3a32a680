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

func newLedgerUC(repo *fakeLedgerRepo) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(repo, domaininv.CaseFoldNames{}, logger.Nop())
}

func TestCurrentStock_ComprasMenosConsumos(t *testing.T) {
	repo := &fakeLedgerRepo{
		purchases: []*entity.PurchaseSummary{
			{Product: "Café en Grano", Unit: "kg", Type: "Insumo", TotalQuantity: dec("10"), AvgUnitPrice: dec("250")},
			{Product: "Leche Entera", Unit: "l", Type: "Insumo", TotalQuantity: dec("3")},
		},
		usage: []*entity.UsageSummary{
			// El consumo llega con mayúsculas distintas: la resta es por nombre canónico
			{ProductName: "café en grano", TotalQuantity: dec("4")},
			{ProductName: "Leche Entera", TotalQuantity: dec("5")},
		},
	}

	levels, err := newLedgerUC(repo).CurrentStock()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	byProduct := map[string]*entity.StockLevel{}
	for _, l := range levels {
		byProduct[l.Product] = l
	}

	cafe := byProduct["Café en Grano"]
	require.NotNil(t, cafe)
	assert.True(t, dec("6").Equal(cafe.OnHand))
	assert.Equal(t, entity.StockStatusOK, cafe.Status, "6 > 5 no es stock bajo")
	assert.True(t, dec("250").Equal(cafe.AvgUnitPrice))

	leche := byProduct["Leche Entera"]
	require.NotNil(t, leche)
	assert.True(t, dec("-2").Equal(leche.OnHand), "el sobreconsumo se reporta negativo, no se recorta")
	assert.Equal(t, entity.StockStatusLow, leche.Status)
}

func TestCurrentStock_UmbralDeBajoStockEsInclusivo(t *testing.T) {
	repo := &fakeLedgerRepo{
		purchases: []*entity.PurchaseSummary{
			{Product: "Azúcar", Unit: "kg", Type: "Insumo", TotalQuantity: dec("5")},
		},
	}

	levels, err := newLedgerUC(repo).CurrentStock()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, entity.StockStatusLow, levels[0].Status, "exactamente 5 ya es Bajo")
}

// Un mismo nombre comprado en unidades distintas produce filas separadas en el
// resumen, pero StockMap suma todo bajo el nombre canónico.
func TestStockMap_SumaUnidadesYRestaConsumos(t *testing.T) {
	repo := &fakeLedgerRepo{
		purchases: []*entity.PurchaseSummary{
			{Product: "Café en Grano", Unit: "kg", Type: "Insumo", TotalQuantity: dec("2")},
			{Product: "café en grano", Unit: "g", Type: "Insumo", TotalQuantity: dec("500")},
		},
		usage: []*entity.UsageSummary{
			{ProductName: "Café en Grano", TotalQuantity: dec("1.5")},
		},
	}

	stock, err := newLedgerUC(repo).StockMap()
	require.NoError(t, err)
	assert.True(t, dec("500.5").Equal(stock["café en grano"]))
}

func TestLedger_ErrorDeRepositorioSePropaga(t *testing.T) {
	repo := &fakeLedgerRepo{err: assert.AnError}
	uc := newLedgerUC(repo)

	_, err := uc.CurrentStock()
	assert.ErrorIs(t, err, assert.AnError)

	_, err = uc.StockMap()
	assert.ErrorIs(t, err, assert.AnError)
}
