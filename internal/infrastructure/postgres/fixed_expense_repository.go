package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.FixedExpenseRepository = (*FixedExpenseRepo)(nil)

// FixedExpenseRepo implementación del puerto FixedExpenseRepository sobre PostgreSQL (usable con pool o tx).
type FixedExpenseRepo struct {
	q Querier
}

// NewFixedExpenseRepository construye el adaptador de persistencia para gastos fijos. Pasar pool o tx (Querier).
func NewFixedExpenseRepository(q Querier) *FixedExpenseRepo {
	return &FixedExpenseRepo{q: q}
}

// Create persiste un gasto fijo y asigna e.ID.
func (r *FixedExpenseRepo) Create(e *entity.FixedExpense) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO fixed_expenses (concept, amount, paid_to, payment_method, frequency, expense_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		e.Concept, e.Amount, e.PaidTo, e.PaymentMethod, e.Frequency, e.ExpenseDate, e.UserID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert fixed expense: %w", err)
	}
	return nil
}

// List lista gastos fijos no borrados, más recientes primero.
func (r *FixedExpenseRepo) List() ([]*entity.FixedExpense, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, concept, amount, paid_to, payment_method, frequency, expense_date, created_at, deleted_at, user_id
		FROM fixed_expenses WHERE deleted_at IS NULL
		ORDER BY expense_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list fixed expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.FixedExpense
	for rows.Next() {
		var e entity.FixedExpense
		if err := rows.Scan(&e.ID, &e.Concept, &e.Amount, &e.PaidTo, &e.PaymentMethod,
			&e.Frequency, &e.ExpenseDate, &e.CreatedAt, &e.DeletedAt, &e.UserID); err != nil {
			return nil, fmt.Errorf("scan fixed expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SoftDelete marca el gasto como borrado.
func (r *FixedExpenseRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE fixed_expenses SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete fixed expense: %w", err)
	}
	return nil
}
