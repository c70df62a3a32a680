package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido y asigna o.ID.
func (r *OrderRepo) Create(o *entity.Order) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO orders (customer_name, customer_phone, delivery_time, delivery_location, payment_method, notes, status, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		o.CustomerName, o.CustomerPhone, o.DeliveryTime, o.DeliveryLocation,
		o.PaymentMethod, o.Notes, o.Status, o.Total,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// AddItems inserta las líneas de un pedido. Options se guarda como arreglo de texto.
func (r *OrderRepo) AddItems(orderID int64, items []*entity.OrderItem) error {
	ctx := context.Background()
	for _, it := range items {
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_name, quantity, unit_price, total, notes, options)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			orderID, it.ProductName, it.Quantity, it.UnitPrice, it.Total, it.Notes, it.Options,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
		it.OrderID = orderID
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe o está borrado.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), `
		SELECT id, customer_name, customer_phone, delivery_time, delivery_location, payment_method, notes, status, total, created_at, deleted_at
		FROM orders WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.DeliveryTime, &o.DeliveryLocation,
		&o.PaymentMethod, &o.Notes, &o.Status, &o.Total, &o.CreatedAt, &o.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista pedidos no borrados, más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, customer_name, customer_phone, delivery_time, delivery_location, payment_method, notes, status, total, created_at, deleted_at
		FROM orders WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.DeliveryTime, &o.DeliveryLocation,
			&o.PaymentMethod, &o.Notes, &o.Status, &o.Total, &o.CreatedAt, &o.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de un pedido.
func (r *OrderRepo) ListItems(orderID int64) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_name, quantity, unit_price, total, notes, options
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.UnitPrice,
			&it.Total, &it.Notes, &it.Options); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un pedido.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1 AND deleted_at IS NULL`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil
	}
	return nil
}

// LatestID devuelve el id del pedido más reciente, 0 si no hay pedidos.
func (r *OrderRepo) LatestID() (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM orders WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("latest order id: %w", err)
	}
	return id, nil
}

// SoftDelete marca el pedido como borrado.
func (r *OrderRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}
