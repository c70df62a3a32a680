package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// FixedExpenseRepository define el puerto de persistencia para gastos fijos.
type FixedExpenseRepository interface {
	Create(e *entity.FixedExpense) error
	List() ([]*entity.FixedExpense, error)
	SoftDelete(id int64) error
}
