package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// CXCUseCase maneja cuentas por cobrar fuera del flujo de venta (alta manual y
// cobro directo). El cobro vía línea de venta "cxc_payment" vive en el caso de
// uso de ventas, dentro de su transacción.
type CXCUseCase struct {
	cxcRepo repository.CXCRepository
}

// NewCXCUseCase construye el caso de uso.
func NewCXCUseCase(cxcRepo repository.CXCRepository) *CXCUseCase {
	return &CXCUseCase{cxcRepo: cxcRepo}
}

// Create registra una deuda de cliente.
func (uc *CXCUseCase) Create(c *entity.CXC) error {
	if strings.TrimSpace(c.CustomerName) == "" {
		return fmt.Errorf("nombre de cliente requerido: %w", domain.ErrInvalidInput)
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("monto de deuda no positivo: %w", domain.ErrInvalidInput)
	}
	c.Status = entity.CXCStatusPending
	return uc.cxcRepo.Create(c)
}

// List devuelve cuentas por cobrar; status vacío lista todas.
func (uc *CXCUseCase) List(status string) ([]*entity.CXC, error) {
	return uc.cxcRepo.List(status)
}

// MarkPaid liquida la deuda.
func (uc *CXCUseCase) MarkPaid(id int64) error {
	c, err := uc.cxcRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.cxcRepo.MarkPaid(id)
}
