package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador de persistencia para tickets de compra. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persiste un ticket y asigna t.ID.
func (r *TicketRepo) Create(t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (ticket_ref, provider, total, payment_method, status, purchase_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		t.TicketRef, t.Provider, t.Total, t.PaymentMethod, t.Status, t.PurchaseDate, t.UserID,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID. Devuelve (nil, nil) si no existe o está borrado.
func (r *TicketRepo) GetByID(id int64) (*entity.Ticket, error) {
	query := `
		SELECT id, ticket_ref, provider, total, payment_method, status, purchase_date, created_at, deleted_at, user_id
		FROM tickets WHERE id = $1 AND deleted_at IS NULL`
	var t entity.Ticket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TicketRef, &t.Provider, &t.Total, &t.PaymentMethod, &t.Status,
		&t.PurchaseDate, &t.CreatedAt, &t.DeletedAt, &t.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// List lista tickets no borrados, más recientes primero.
func (r *TicketRepo) List(limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT id, ticket_ref, provider, total, payment_method, status, purchase_date, created_at, deleted_at, user_id
		FROM tickets WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.TicketRef, &t.Provider, &t.Total, &t.PaymentMethod, &t.Status,
			&t.PurchaseDate, &t.CreatedAt, &t.DeletedAt, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ReplaceItems borra y reinserta las partidas del ticket y actualiza su estado.
// El desglose siempre es completo, nunca parche incremental.
func (r *TicketRepo) ReplaceItems(ticketID int64, status string, items []*entity.TicketItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM ticket_items WHERE ticket_id = $1`, ticketID); err != nil {
		return fmt.Errorf("delete ticket items: %w", err)
	}
	for _, it := range items {
		err := r.q.QueryRow(ctx, `
			INSERT INTO ticket_items (ticket_id, product, quantity, unit, unit_price, discount, total, type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			ticketID, it.Product, it.Quantity, it.Unit, it.UnitPrice, it.Discount, it.Total, it.Type,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert ticket item: %w", err)
		}
		it.TicketID = ticketID
	}
	if _, err := r.q.Exec(ctx, `UPDATE tickets SET status = $2 WHERE id = $1`, ticketID, status); err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	return nil
}

// ListItems lista las partidas de un ticket.
func (r *TicketRepo) ListItems(ticketID int64) ([]*entity.TicketItem, error) {
	query := `
		SELECT id, ticket_id, product, quantity, unit, unit_price, discount, total, type
		FROM ticket_items WHERE ticket_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketItem
	for rows.Next() {
		var it entity.TicketItem
		if err := rows.Scan(&it.ID, &it.TicketID, &it.Product, &it.Quantity, &it.Unit,
			&it.UnitPrice, &it.Discount, &it.Total, &it.Type); err != nil {
			return nil, fmt.Errorf("scan ticket item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SoftDelete marca el ticket como borrado. Sus partidas dejan de contar en el inventario.
func (r *TicketRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tickets SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete ticket: %w", err)
	}
	return nil
}
