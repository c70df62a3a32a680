package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta y asigna s.ID.
func (r *SaleRepo) Create(s *entity.Sale) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO sales (total, payment_method, customer_name, customer_phone, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		s.Total, s.PaymentMethod, s.CustomerName, s.CustomerPhone, s.UserID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// AddItems inserta las líneas de una venta.
func (r *SaleRepo) AddItems(saleID int64, items []*entity.SaleItem) error {
	ctx := context.Background()
	for _, it := range items {
		err := r.q.QueryRow(ctx, `
			INSERT INTO sale_items (sale_id, product_name, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			saleID, it.ProductName, it.Quantity, it.UnitPrice, it.Total,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
		it.SaleID = saleID
	}
	return nil
}

// ListBetween lista ventas no borradas en el rango [from, to), más recientes primero.
func (r *SaleRepo) ListBetween(from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, total, payment_method, customer_name, customer_phone, created_at, deleted_at, user_id
		FROM sales
		WHERE deleted_at IS NULL AND created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Total, &s.PaymentMethod, &s.CustomerName, &s.CustomerPhone,
			&s.CreatedAt, &s.DeletedAt, &s.UserID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de una venta.
func (r *SaleRepo) ListItems(saleID int64) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, product_name, quantity, unit_price, total
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// TopProducts agrega líneas de venta por producto en el rango, ordenadas por
// cantidad vendida descendente. Excluye ventas borradas.
func (r *SaleRepo) TopProducts(from, to time.Time, limit int) ([]*repository.TopProduct, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT si.product_name, SUM(si.quantity) AS total_qty, SUM(si.total) AS total_amount
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id AND s.deleted_at IS NULL
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY si.product_name
		ORDER BY total_qty DESC
		LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []*repository.TopProduct
	for rows.Next() {
		var tp repository.TopProduct
		if err := rows.Scan(&tp.ProductName, &tp.TotalQty, &tp.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, &tp)
	}
	return list, rows.Err()
}

// SoftDelete marca la venta como borrada. Los consumos de inventario asociados
// no se revierten; quedan como asientos históricos.
func (r *SaleRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete sale: %w", err)
	}
	return nil
}
