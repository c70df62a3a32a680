package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByLogin busca por username o email exacto entre usuarios no borrados.
	// Devuelve (nil, nil) si no existe.
	GetByLogin(login string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
	SoftDelete(id int64) error
}
