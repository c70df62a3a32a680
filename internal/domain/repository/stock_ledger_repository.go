package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// StockLedgerRepository define las lecturas agregadas del libro de inventario.
// Son vistas de solo lectura calculadas en cada llamada, no contadores
// materializados: lecturas concurrentes con ventas en vuelo son eventualmente
// consistentes por diseño.
type StockLedgerRepository interface {
	// PurchaseSummaries agrega partidas de compra por (producto, unidad, tipo),
	// excluyendo tickets borrados.
	PurchaseSummaries() ([]*entity.PurchaseSummary, error)
	// UsageSummaries agrega consumos por nombre de producto.
	UsageSummaries() ([]*entity.UsageSummary, error)
}
