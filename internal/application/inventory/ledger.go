package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// lowStockThreshold marca una fila del resumen como "Bajo". Fijo, no
// configurable.
var lowStockThreshold = decimal.NewFromInt(5)

// LedgerUseCase calcula el libro de inventario: existencia actual por producto
// como compras acumuladas menos consumos acumulados, sin filtro de fechas.
// Es una vista recalculada en cada llamada; bajo concurrencia con ventas en
// vuelo puede sobrevenderse, limitación aceptada en esta capa.
type LedgerUseCase struct {
	ledgerRepo repository.StockLedgerRepository
	names      domaininv.ProductNames
	log        *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.StockLedgerRepository, names domaininv.ProductNames, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, names: names, log: log}
}

// CurrentStock devuelve una fila por (producto, unidad, tipo) comprado:
// total comprado, total usado, existencia (puede ser negativa: señal de
// sobreconsumo, no se recorta aquí), precio unitario promedio y última fecha
// de compra. Los consumos se agregan solo por nombre de producto: un mismo
// nombre comprado en unidades distintas no se reconcilia y se reporta.
func (uc *LedgerUseCase) CurrentStock() ([]*entity.StockLevel, error) {
	purchases, err := uc.ledgerRepo.PurchaseSummaries()
	if err != nil {
		return nil, fmt.Errorf("agregados de compra: %w", err)
	}
	usage, err := uc.ledgerRepo.UsageSummaries()
	if err != nil {
		return nil, fmt.Errorf("agregados de consumo: %w", err)
	}

	usageByProduct := make(map[string]decimal.Decimal, len(usage))
	for _, u := range usage {
		key := uc.names.Canonical(u.ProductName)
		usageByProduct[key] = usageByProduct[key].Add(u.TotalQuantity)
	}

	unitsPerProduct := make(map[string]map[string]struct{})
	levels := make([]*entity.StockLevel, 0, len(purchases))
	for _, p := range purchases {
		key := uc.names.Canonical(p.Product)
		used := usageByProduct[key]
		onHand := p.TotalQuantity.Sub(used)

		status := entity.StockStatusOK
		if onHand.LessThanOrEqual(lowStockThreshold) {
			status = entity.StockStatusLow
		}
		levels = append(levels, &entity.StockLevel{
			Product:          p.Product,
			Unit:             p.Unit,
			Type:             p.Type,
			TotalPurchased:   p.TotalQuantity,
			TotalUsed:        used,
			OnHand:           onHand,
			AvgUnitPrice:     p.AvgUnitPrice,
			LastPurchaseDate: p.LastPurchaseDate,
			Status:           status,
		})

		if unitsPerProduct[key] == nil {
			unitsPerProduct[key] = make(map[string]struct{})
		}
		unitsPerProduct[key][p.Unit] = struct{}{}
	}

	// Unidades mezcladas para un mismo nombre hacen la resta compras-consumos
	// incorrecta; no hay tabla de conversión, solo se advierte.
	for product, units := range unitsPerProduct {
		if len(units) > 1 {
			uc.log.Warn().Str("product", product).Int("units", len(units)).
				Msg("producto comprado en unidades distintas, el stock no se reconcilia entre unidades")
		}
	}

	return levels, nil
}

// StockMap devuelve existencia por nombre canónico de producto, sumando compras
// de todas las unidades y restando consumos. Lo usa el cálculo de alertas.
func (uc *LedgerUseCase) StockMap() (map[string]decimal.Decimal, error) {
	purchases, err := uc.ledgerRepo.PurchaseSummaries()
	if err != nil {
		return nil, fmt.Errorf("agregados de compra: %w", err)
	}
	usage, err := uc.ledgerRepo.UsageSummaries()
	if err != nil {
		return nil, fmt.Errorf("agregados de consumo: %w", err)
	}

	stock := make(map[string]decimal.Decimal, len(purchases))
	for _, p := range purchases {
		key := uc.names.Canonical(p.Product)
		stock[key] = stock[key].Add(p.TotalQuantity)
	}
	for _, u := range usage {
		key := uc.names.Canonical(u.ProductName)
		stock[key] = stock[key].Sub(u.TotalQuantity)
	}
	return stock, nil
}
