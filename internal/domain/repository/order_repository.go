package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	// Create asigna o.ID con el id generado.
	Create(o *entity.Order) error
	AddItems(orderID int64, items []*entity.OrderItem) error
	GetByID(id int64) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListItems(orderID int64) ([]*entity.OrderItem, error)
	UpdateStatus(id int64, status string) error
	// LatestID devuelve el id del pedido más reciente, 0 si no hay pedidos.
	LatestID() (int64, error)
	SoftDelete(id int64) error
}
