package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

type stubSaleRepo struct {
	sales []*entity.Sale
	top   []*repository.TopProduct
	limit int
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

func (s *stubSaleRepo) Create(*entity.Sale) error                        { return nil }
func (s *stubSaleRepo) AddItems(int64, []*entity.SaleItem) error         { return nil }
func (s *stubSaleRepo) ListItems(int64) ([]*entity.SaleItem, error)      { return nil, nil }
func (s *stubSaleRepo) SoftDelete(int64) error                           { return nil }
func (s *stubSaleRepo) ListBetween(_, _ time.Time) ([]*entity.Sale, error) { return s.sales, nil }

func (s *stubSaleRepo) TopProducts(_, _ time.Time, limit int) ([]*repository.TopProduct, error) {
	s.limit = limit
	return s.top, nil
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDayRange_RangoExplicitoIncluyeElDiaFinal(t *testing.T) {
	from, to, err := usecase.DayRange("2026-08-01", "2026-08-03")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 8, 3, 23, 59, 59, 0, time.Local), to)
}

func TestDayRange_SinParametrosUsaHoy(t *testing.T) {
	from, to, err := usecase.DayRange("", "")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Day(), from.Day())
	assert.Equal(t, 0, from.Hour())
	assert.True(t, to.After(from))
}

func TestDayRange_FechaInvalida(t *testing.T) {
	_, _, err := usecase.DayRange("03/08/2026", "2026-08-03")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = usecase.DayRange("2026-08-01", "mañana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Solo los métodos que entran dinero al momento suman al total; CXC y Cortesía
// cuentan como venta pero no como ingreso.
func TestSummary_SeparaIngresoDeCXCYCortesia(t *testing.T) {
	repo := &stubSaleRepo{sales: []*entity.Sale{
		{Total: mustDec("100"), PaymentMethod: "Efectivo"},
		{Total: mustDec("80"), PaymentMethod: "tarjeta"}, // case-insensitive
		{Total: mustDec("50"), PaymentMethod: "CXC"},
		{Total: mustDec("45"), PaymentMethod: "Cortesía"},
	}}
	uc := usecase.NewDashboardUseCase(repo)

	from, to, _ := usecase.DayRange("2026-08-27", "2026-08-27")
	summary, err := uc.Summary(from, to)
	require.NoError(t, err)

	assert.True(t, mustDec("180").Equal(summary.TotalSales))
	assert.True(t, mustDec("50").Equal(summary.TotalCXC))
	assert.Equal(t, 4, summary.TotalOrders)
	assert.True(t, summary.Goal.IsPositive())
}

func TestTopProducts_LimiteNoPositivoUsaDefault(t *testing.T) {
	repo := &stubSaleRepo{top: []*repository.TopProduct{{ProductName: "Latte"}}}
	uc := usecase.NewDashboardUseCase(repo)

	top, err := uc.TopProducts(time.Now(), time.Now(), 0)
	require.NoError(t, err)
	assert.Len(t, top, 1)
	assert.Equal(t, 5, repo.limit)
}
