package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.UsageRecordRepository = (*UsageRecordRepo)(nil)

// UsageRecordRepo implementación del puerto UsageRecordRepository sobre PostgreSQL (usable con pool o tx).
// Los asientos de consumo son append-only.
type UsageRecordRepo struct {
	q Querier
}

// NewUsageRecordRepository construye el adaptador de persistencia para consumos. Pasar pool o tx (Querier).
func NewUsageRecordRepository(q Querier) *UsageRecordRepo {
	return &UsageRecordRepo{q: q}
}

// CreateBatch inserta los asientos de una corrida de descuento.
func (r *UsageRecordRepo) CreateBatch(records []*entity.UsageRecord) error {
	ctx := context.Background()
	for _, rec := range records {
		err := r.q.QueryRow(ctx, `
			INSERT INTO inventory_usage (batch_id, sale_id, order_id, product_name, quantity, unit)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`,
			rec.BatchID, rec.SaleID, rec.OrderID, rec.ProductName, rec.Quantity, rec.Unit,
		).Scan(&rec.ID, &rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert usage record: %w", err)
		}
	}
	return nil
}

// ListBySale lista los consumos ligados a una venta.
func (r *UsageRecordRepo) ListBySale(saleID int64) ([]*entity.UsageRecord, error) {
	return r.list(`sale_id = $1`, saleID)
}

// ListByOrder lista los consumos ligados a un pedido.
func (r *UsageRecordRepo) ListByOrder(orderID int64) ([]*entity.UsageRecord, error) {
	return r.list(`order_id = $1`, orderID)
}

func (r *UsageRecordRepo) list(where string, arg any) ([]*entity.UsageRecord, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, batch_id, sale_id, order_id, product_name, quantity, unit, created_at
		FROM inventory_usage WHERE `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list usage records: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsageRecord
	for rows.Next() {
		var rec entity.UsageRecord
		if err := rows.Scan(&rec.ID, &rec.BatchID, &rec.SaleID, &rec.OrderID,
			&rec.ProductName, &rec.Quantity, &rec.Unit, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usage record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
