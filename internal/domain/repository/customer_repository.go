package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	// UpsertByPhone inserta el cliente o, si el teléfono ya existe, actualiza
	// el nombre.
	UpsertByPhone(name, phone string) error
	List() ([]*entity.Customer, error)
}
