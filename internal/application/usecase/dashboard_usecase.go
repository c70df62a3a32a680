package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// Métodos de pago que cuentan como ingreso del día en el resumen. CXC y
// Cortesía quedan fuera: no entra dinero al momento.
var cashLikeMethods = map[string]struct{}{
	"efectivo":      {},
	"tarjeta":       {},
	"transferencia": {},
	"uber eats":     {},
}

// dailyGoal meta de venta diaria mostrada en el dashboard.
var dailyGoal = decimal.NewFromInt(5500)

// DashboardSummary es el resumen del rango para el tablero.
type DashboardSummary struct {
	TotalSales  decimal.Decimal
	TotalOrders int
	Goal        decimal.Decimal
	TotalCXC    decimal.Decimal // deuda generada en el rango
}

// DashboardUseCase calcula métricas de ventas para el tablero.
type DashboardUseCase struct {
	saleRepo repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(saleRepo repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo}
}

// DayRange convierte fechas "YYYY-MM-DD" al rango [inicio, fin] del día local.
// Con parámetros vacíos usa el día de hoy.
func DayRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.Add(24*time.Hour - time.Second), nil
	}
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha 'from' %q: %w", from, domain.ErrInvalidInput)
	}
	end, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha 'to' %q: %w", to, domain.ErrInvalidInput)
	}
	return start, end.Add(24*time.Hour - time.Second), nil
}

// Summary calcula ventas cobradas, número de ventas y CXC generado en el rango.
func (uc *DashboardUseCase) Summary(from, to time.Time) (*DashboardSummary, error) {
	sales, err := uc.saleRepo.ListBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("ventas del rango: %w", err)
	}

	summary := &DashboardSummary{Goal: dailyGoal, TotalOrders: len(sales)}
	for _, s := range sales {
		method := strings.ToLower(strings.TrimSpace(s.PaymentMethod))
		if _, ok := cashLikeMethods[method]; ok {
			summary.TotalSales = summary.TotalSales.Add(s.Total)
		}
		if method == "cxc" {
			summary.TotalCXC = summary.TotalCXC.Add(s.Total)
		}
	}
	return summary, nil
}

// TopProducts devuelve los productos más vendidos del rango.
func (uc *DashboardUseCase) TopProducts(from, to time.Time, limit int) ([]*repository.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	return uc.saleRepo.TopProducts(from, to, limit)
}
