package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.CXCRepository = (*CXCRepo)(nil)

// CXCRepo implementación del puerto CXCRepository sobre PostgreSQL (usable con pool o tx).
type CXCRepo struct {
	q Querier
}

// NewCXCRepository construye el adaptador de persistencia para cuentas por cobrar. Pasar pool o tx (Querier).
func NewCXCRepository(q Querier) *CXCRepo {
	return &CXCRepo{q: q}
}

// Create persiste una cuenta por cobrar y asigna c.ID.
func (r *CXCRepo) Create(c *entity.CXC) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO cxc (customer_name, customer_phone, amount, sale_id, status, notes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		c.CustomerName, c.CustomerPhone, c.Amount, c.SaleID, c.Status, c.Notes, c.UserID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert cxc: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por cobrar por ID. Devuelve (nil, nil) si no existe.
func (r *CXCRepo) GetByID(id int64) (*entity.CXC, error) {
	var c entity.CXC
	err := r.q.QueryRow(context.Background(), `
		SELECT id, customer_name, customer_phone, amount, sale_id, status, notes, created_at, updated_at, paid_at, user_id
		FROM cxc WHERE id = $1`, id,
	).Scan(&c.ID, &c.CustomerName, &c.CustomerPhone, &c.Amount, &c.SaleID, &c.Status,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt, &c.PaidAt, &c.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cxc: %w", err)
	}
	return &c, nil
}

// List lista cuentas por cobrar; con status no vacío filtra por estado.
func (r *CXCRepo) List(status string) ([]*entity.CXC, error) {
	query := `
		SELECT id, customer_name, customer_phone, amount, sale_id, status, notes, created_at, updated_at, paid_at, user_id
		FROM cxc`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cxc: %w", err)
	}
	defer rows.Close()
	var list []*entity.CXC
	for rows.Next() {
		var c entity.CXC
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.CustomerPhone, &c.Amount, &c.SaleID, &c.Status,
			&c.Notes, &c.CreatedAt, &c.UpdatedAt, &c.PaidAt, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan cxc: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// MarkPaid cambia el estado a Paid y sella PaidAt. Idempotente: pagar una
// cuenta ya pagada no la modifica.
func (r *CXCRepo) MarkPaid(id int64) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE cxc SET status = $2, paid_at = now(), updated_at = now()
		WHERE id = $1 AND status <> $2`,
		id, entity.CXCStatusPaid)
	if err != nil {
		return fmt.Errorf("mark cxc paid: %w", err)
	}
	return nil
}
