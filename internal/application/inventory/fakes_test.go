package inventory_test

// Fakes en memoria de los puertos de persistencia que usa el motor de
// inventario. Implementan la interfaz completa pero solo los métodos que los
// casos de uso ejercitan tienen comportamiento real.

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i64(v int64) *int64 { return &v }

// ── Menú ─────────────────────────────────────────────────────────────────────

type fakeMenuRepo struct {
	items []*entity.MenuItem
	err   error
}

var _ repository.MenuItemRepository = (*fakeMenuRepo)(nil)

func (f *fakeMenuRepo) Create(*entity.MenuItem) error           { return nil }
func (f *fakeMenuRepo) Update(*entity.MenuItem) error           { return nil }
func (f *fakeMenuRepo) GetByID(int64) (*entity.MenuItem, error) { return nil, nil }
func (f *fakeMenuRepo) SoftDelete(int64) error                  { return nil }

func (f *fakeMenuRepo) GetActiveByName(name string) (*entity.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.items {
		if m.Name == name && m.IsActive && m.DeletedAt == nil {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) List(onlyActive bool) ([]*entity.MenuItem, error) {
	return f.items, f.err
}

func (f *fakeMenuRepo) ListActiveWithRecipe() ([]*entity.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*entity.MenuItem{}
	for _, m := range f.items {
		if m.IsActive && m.RecipeID != nil && m.DeletedAt == nil {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── Recetas ──────────────────────────────────────────────────────────────────

type fakeRecipeRepo struct {
	recipes     []*entity.Recipe
	ingredients map[int64][]*entity.RecipeIngredient
	err         error
}

var _ repository.RecipeRepository = (*fakeRecipeRepo)(nil)

func (f *fakeRecipeRepo) Create(*entity.Recipe) error         { return nil }
func (f *fakeRecipeRepo) Update(*entity.Recipe) error         { return nil }
func (f *fakeRecipeRepo) GetByID(int64) (*entity.Recipe, error) { return nil, nil }
func (f *fakeRecipeRepo) List() ([]*entity.Recipe, error)     { return f.recipes, nil }
func (f *fakeRecipeRepo) SoftDelete(int64) error              { return nil }

func (f *fakeRecipeRepo) ReplaceIngredients(int64, []*entity.RecipeIngredient) error { return nil }

func (f *fakeRecipeRepo) GetByName(name string) (*entity.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.recipes {
		if r.Name == name && r.DeletedAt == nil {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecipeRepo) ListIngredients(recipeID int64) ([]*entity.RecipeIngredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ingredients[recipeID], nil
}

func (f *fakeRecipeRepo) ListAllIngredients() ([]*entity.RecipeIngredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*entity.RecipeIngredient{}
	for recipeID, ings := range f.ingredients {
		for _, ing := range ings {
			cp := *ing
			cp.RecipeID = recipeID
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Consumos ─────────────────────────────────────────────────────────────────

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

func (f *fakeUsageRepo) ListBySale(saleID int64) ([]*entity.UsageRecord, error) {
	out := []*entity.UsageRecord{}
	for _, r := range f.records {
		if r.SaleID != nil && *r.SaleID == saleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUsageRepo) ListByOrder(orderID int64) ([]*entity.UsageRecord, error) {
	out := []*entity.UsageRecord{}
	for _, r := range f.records {
		if r.OrderID != nil && *r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}

// totalFor suma las cantidades consumidas de un producto (nombre exacto).
func (f *fakeUsageRepo) totalFor(product string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range f.records {
		if r.ProductName == product {
			total = total.Add(r.Quantity)
		}
	}
	return total
}

// ── Libro de inventario ──────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	purchases []*entity.PurchaseSummary
	usage     []*entity.UsageSummary
	err       error
}

var _ repository.StockLedgerRepository = (*fakeLedgerRepo)(nil)

func (f *fakeLedgerRepo) PurchaseSummaries() ([]*entity.PurchaseSummary, error) {
	return f.purchases, f.err
}

func (f *fakeLedgerRepo) UsageSummaries() ([]*entity.UsageSummary, error) {
	return f.usage, f.err
}
