package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/application/sales"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i64(v int64) *int64 { return &v }

// ── Fakes ────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn con los repos dados; si fn falla, marca el rollback
// descartando los efectos como haría la transacción real.
type fakeTxRunner struct {
	repos      appinv.TxRepos
	runs       int
	rolledBack bool
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repos appinv.TxRepos) error) error {
	f.runs++
	if err := fn(f.repos); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeSaleRepo struct {
	nextID    int64
	created   []*entity.Sale
	itemsBy   map[int64][]*entity.SaleItem
	createErr error
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	s.ID = f.nextID
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSaleRepo) AddItems(saleID int64, items []*entity.SaleItem) error {
	if f.itemsBy == nil {
		f.itemsBy = map[int64][]*entity.SaleItem{}
	}
	f.itemsBy[saleID] = append(f.itemsBy[saleID], items...)
	return nil
}

func (f *fakeSaleRepo) ListBetween(_, _ time.Time) ([]*entity.Sale, error)   { return f.created, nil }
func (f *fakeSaleRepo) ListItems(saleID int64) ([]*entity.SaleItem, error)   { return f.itemsBy[saleID], nil }
func (f *fakeSaleRepo) SoftDelete(int64) error                               { return nil }
func (f *fakeSaleRepo) TopProducts(_, _ time.Time, _ int) ([]*repository.TopProduct, error) {
	return nil, nil
}

type fakeCXCRepo struct {
	paid []int64
}

var _ repository.CXCRepository = (*fakeCXCRepo)(nil)

func (f *fakeCXCRepo) Create(*entity.CXC) error               { return nil }
func (f *fakeCXCRepo) GetByID(int64) (*entity.CXC, error)     { return nil, nil }
func (f *fakeCXCRepo) List(string) ([]*entity.CXC, error)     { return nil, nil }
func (f *fakeCXCRepo) MarkPaid(id int64) error                { f.paid = append(f.paid, id); return nil }

type fakeMenuRepo struct{ items []*entity.MenuItem }

var _ repository.MenuItemRepository = (*fakeMenuRepo)(nil)

func (f *fakeMenuRepo) Create(*entity.MenuItem) error                    { return nil }
func (f *fakeMenuRepo) Update(*entity.MenuItem) error                    { return nil }
func (f *fakeMenuRepo) GetByID(int64) (*entity.MenuItem, error)          { return nil, nil }
func (f *fakeMenuRepo) List(bool) ([]*entity.MenuItem, error)            { return f.items, nil }
func (f *fakeMenuRepo) ListActiveWithRecipe() ([]*entity.MenuItem, error) { return nil, nil }
func (f *fakeMenuRepo) SoftDelete(int64) error                           { return nil }

func (f *fakeMenuRepo) GetActiveByName(name string) (*entity.MenuItem, error) {
	for _, m := range f.items {
		if m.Name == name && m.IsActive {
			return m, nil
		}
	}
	return nil, nil
}

type fakeRecipeRepo struct {
	recipes     []*entity.Recipe
	ingredients map[int64][]*entity.RecipeIngredient
}

var _ repository.RecipeRepository = (*fakeRecipeRepo)(nil)

func (f *fakeRecipeRepo) Create(*entity.Recipe) error                             { return nil }
func (f *fakeRecipeRepo) Update(*entity.Recipe) error                             { return nil }
func (f *fakeRecipeRepo) GetByID(int64) (*entity.Recipe, error)                   { return nil, nil }
func (f *fakeRecipeRepo) List() ([]*entity.Recipe, error)                         { return f.recipes, nil }
func (f *fakeRecipeRepo) SoftDelete(int64) error                                  { return nil }
func (f *fakeRecipeRepo) ReplaceIngredients(int64, []*entity.RecipeIngredient) error { return nil }
func (f *fakeRecipeRepo) ListAllIngredients() ([]*entity.RecipeIngredient, error) { return nil, nil }

func (f *fakeRecipeRepo) GetByName(name string) (*entity.Recipe, error) {
	for _, r := range f.recipes {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecipeRepo) ListIngredients(recipeID int64) ([]*entity.RecipeIngredient, error) {
	return f.ingredients[recipeID], nil
}

type fakeUsageRepo struct {
	records   []*entity.UsageRecord
	createErr error
}

var _ repository.UsageRecordRepository = (*fakeUsageRepo)(nil)

func (f *fakeUsageRepo) CreateBatch(records []*entity.UsageRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeUsageRepo) ListBySale(int64) ([]*entity.UsageRecord, error)  { return f.records, nil }
func (f *fakeUsageRepo) ListByOrder(int64) ([]*entity.UsageRecord, error) { return f.records, nil }

// ── Escenario ────────────────────────────────────────────────────────────────

type saleScenario struct {
	uc     *sales.CreateSaleUseCase
	runner *fakeTxRunner
	sales  *fakeSaleRepo
	usage  *fakeUsageRepo
	cxc    *fakeCXCRepo
}

// newScenario arma el caso de uso con un americano de receta conocida.
func newScenario() *saleScenario {
	saleRepo := &fakeSaleRepo{}
	usageRepo := &fakeUsageRepo{}
	cxcRepo := &fakeCXCRepo{}
	recipeRepo := &fakeRecipeRepo{
		recipes: []*entity.Recipe{{ID: 1, Name: "Café Americano"}},
		ingredients: map[int64][]*entity.RecipeIngredient{
			1: {{ProductName: "Café en Grano", Quantity: dec("0.015"), Unit: "kg"}},
		},
	}
	runner := &fakeTxRunner{repos: appinv.TxRepos{
		Recipes: recipeRepo,
		Menu:    &fakeMenuRepo{},
		Sales:   saleRepo,
		Usage:   usageRepo,
		CXC:     cxcRepo,
	}}

	log := logger.Nop()
	deduct := appinv.NewDeductUseCase(appinv.NewResolver(log), domaininv.CaseFoldNames{}, log)
	return &saleScenario{
		uc:     sales.NewCreateSaleUseCase(runner, deduct, log),
		runner: runner,
		sales:  saleRepo,
		usage:  usageRepo,
		cxc:    cxcRepo,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateSale_VentaConDescuentoDeInventario(t *testing.T) {
	sc := newScenario()

	sale, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		Total:         dec("90"),
		PaymentMethod: "Efectivo",
		UserID:        i64(3),
		Items: []appinv.SoldLineItem{
			{ProductName: "Café Americano", Quantity: dec("2"), UnitPrice: dec("45"), Total: dec("90")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, int64(1), sale.ID)

	require.Len(t, sc.sales.itemsBy[sale.ID], 1, "la línea de venta debe persistirse")

	require.Len(t, sc.usage.records, 1)
	rec := sc.usage.records[0]
	assert.Equal(t, "Café en Grano", rec.ProductName)
	assert.True(t, dec("0.030").Equal(rec.Quantity))
	require.NotNil(t, rec.SaleID)
	assert.Equal(t, sale.ID, *rec.SaleID)
	assert.NotEmpty(t, rec.BatchID)
	assert.False(t, sc.runner.rolledBack)
}

func TestCreateSale_AbonoCXCMarcaPagadaSinConsumos(t *testing.T) {
	sc := newScenario()

	_, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		Total:         dec("120"),
		PaymentMethod: "Efectivo",
		Items: []appinv.SoldLineItem{
			{
				ProductName: "Abono deuda Laura",
				Quantity:    dec("1"),
				Total:       dec("120"),
				Type:        appinv.LineTypeCXCPayment,
				CXCID:       i64(9),
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{9}, sc.cxc.paid, "el abono debe marcar la CXC como pagada")
	assert.Empty(t, sc.usage.records, "una línea cxc_payment nunca toca inventario")
}

func TestCreateSale_SinMetodoDePagoNoAbreTransaccion(t *testing.T) {
	sc := newScenario()

	_, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{Total: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, sc.runner.runs, "la validación ocurre antes de abrir la tx")
}

func TestCreateSale_LineaInvalidaNoAbreTransaccion(t *testing.T) {
	sc := newScenario()

	_, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		Total:         dec("10"),
		PaymentMethod: "Efectivo",
		Items:         []appinv.SoldLineItem{{ProductName: "Latte", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, sc.runner.runs)
}

// Una receta faltante es negocio normal: la venta procede, solo sin consumos.
func TestCreateSale_RecetaNoResueltaNoAborta(t *testing.T) {
	sc := newScenario()

	sale, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		Total:         dec("30"),
		PaymentMethod: "Tarjeta",
		Items: []appinv.SoldLineItem{
			{ProductName: "Platillo Sin Receta", Quantity: dec("1"), Total: dec("30")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Empty(t, sc.usage.records)
	assert.False(t, sc.runner.rolledBack)
}

func TestCreateSale_FalloDeDescuentoHaceRollback(t *testing.T) {
	sc := newScenario()
	sc.usage.createErr = errors.New("disco lleno")

	sale, err := sc.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		Total:         dec("45"),
		PaymentMethod: "Efectivo",
		Items: []appinv.SoldLineItem{
			{ProductName: "Café Americano", Quantity: dec("1"), Total: dec("45")},
		},
	})
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, sc.runner.rolledBack, "un descuento parcial nunca debe ser observable")
}
