package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// ExpenseUseCase maneja gastos fijos.
type ExpenseUseCase struct {
	expenseRepo repository.FixedExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.FixedExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto fijo.
func (uc *ExpenseUseCase) Create(e *entity.FixedExpense) error {
	if strings.TrimSpace(e.Concept) == "" {
		return fmt.Errorf("concepto requerido: %w", domain.ErrInvalidInput)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("monto no positivo: %w", domain.ErrInvalidInput)
	}
	return uc.expenseRepo.Create(e)
}

// List devuelve los gastos fijos no borrados.
func (uc *ExpenseUseCase) List() ([]*entity.FixedExpense, error) {
	return uc.expenseRepo.List()
}

// Delete borra lógicamente el gasto.
func (uc *ExpenseUseCase) Delete(id int64) error {
	return uc.expenseRepo.SoftDelete(id)
}
