package inventory

import (
	"context"

	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
// Ningún sub-paso hace commit por su cuenta: la atomicidad venta/pedido +
// consumos de inventario + cobro de CXC depende de compartir esta transacción.
type TxRepos struct {
	Tickets   repository.TicketRepository
	Recipes   repository.RecipeRepository
	Menu      repository.MenuItemRepository
	Sales     repository.SaleRepository
	Orders    repository.OrderRepository
	Usage     repository.UsageRecordRepository
	CXC       repository.CXCRepository
	Customers repository.CustomerRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn devuelve error se hace Rollback completo;
// si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
