package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para tickets de compra y
// sus partidas.
type TicketRepository interface {
	Create(t *entity.Ticket) error
	GetByID(id int64) (*entity.Ticket, error)
	List(limit, offset int) ([]*entity.Ticket, error)
	// ReplaceItems borra y reinserta las partidas del ticket (desglose completo,
	// no parche incremental) y actualiza el estado del ticket.
	ReplaceItems(ticketID int64, status string, items []*entity.TicketItem) error
	ListItems(ticketID int64) ([]*entity.TicketItem, error)
	SoftDelete(id int64) error
}
