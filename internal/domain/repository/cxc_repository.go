package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// CXCRepository define el puerto de persistencia para cuentas por cobrar.
type CXCRepository interface {
	Create(c *entity.CXC) error
	GetByID(id int64) (*entity.CXC, error)
	List(status string) ([]*entity.CXC, error)
	// MarkPaid cambia el estado a Paid y sella PaidAt.
	MarkPaid(id int64) error
}
