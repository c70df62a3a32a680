package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo lecturas agregadas del libro de inventario sobre PostgreSQL.
// No materializa contadores: cada llamada recalcula desde tickets y consumos.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador de lecturas del libro. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// PurchaseSummaries agrega partidas de compra por (producto, unidad, tipo),
// excluyendo tickets borrados.
func (r *StockLedgerRepo) PurchaseSummaries() ([]*entity.PurchaseSummary, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT ti.product, ti.unit, ti.type,
		       SUM(ti.quantity) AS total_quantity,
		       AVG(ti.unit_price) AS avg_unit_price,
		       MAX(COALESCE(t.purchase_date, t.created_at)) AS last_purchase_date
		FROM ticket_items ti
		JOIN tickets t ON t.id = ti.ticket_id AND t.deleted_at IS NULL
		GROUP BY ti.product, ti.unit, ti.type
		ORDER BY ti.product`)
	if err != nil {
		return nil, fmt.Errorf("purchase summaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseSummary
	for rows.Next() {
		var s entity.PurchaseSummary
		if err := rows.Scan(&s.Product, &s.Unit, &s.Type, &s.TotalQuantity,
			&s.AvgUnitPrice, &s.LastPurchaseDate); err != nil {
			return nil, fmt.Errorf("scan purchase summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UsageSummaries agrega consumos por nombre de producto.
func (r *StockLedgerRepo) UsageSummaries() ([]*entity.UsageSummary, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_name, SUM(quantity) AS total_quantity
		FROM inventory_usage
		GROUP BY product_name
		ORDER BY product_name`)
	if err != nil {
		return nil, fmt.Errorf("usage summaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsageSummary
	for rows.Next() {
		var s entity.UsageSummary
		if err := rows.Scan(&s.ProductName, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan usage summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
