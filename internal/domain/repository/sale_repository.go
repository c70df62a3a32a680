package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// TopProduct es un agregado de ventas por producto para el dashboard.
type TopProduct struct {
	ProductName string
	TotalQty    decimal.Decimal
	TotalAmount decimal.Decimal
}

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	// Create asigna s.ID con el id generado.
	Create(s *entity.Sale) error
	AddItems(saleID int64, items []*entity.SaleItem) error
	ListBetween(from, to time.Time) ([]*entity.Sale, error)
	ListItems(saleID int64) ([]*entity.SaleItem, error)
	// TopProducts agrega líneas de venta por producto en el rango, ordenadas
	// por cantidad vendida descendente.
	TopProducts(from, to time.Time, limit int) ([]*TopProduct, error)
	SoftDelete(id int64) error
}
