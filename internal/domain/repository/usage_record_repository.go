package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// UsageRecordRepository define el puerto de persistencia para asientos de
// consumo de inventario. Solo inserciones: los asientos son append-only.
type UsageRecordRepository interface {
	CreateBatch(records []*entity.UsageRecord) error
	ListBySale(saleID int64) ([]*entity.UsageRecord, error)
	ListByOrder(orderID int64) ([]*entity.UsageRecord, error)
}
