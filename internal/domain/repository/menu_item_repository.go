package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para platillos del menú.
type MenuItemRepository interface {
	Create(m *entity.MenuItem) error
	Update(m *entity.MenuItem) error
	GetByID(id int64) (*entity.MenuItem, error)
	// GetActiveByName busca por nombre exacto (case-sensitive) entre platillos
	// activos y no borrados. Devuelve (nil, nil) si no existe.
	GetActiveByName(name string) (*entity.MenuItem, error)
	List(onlyActive bool) ([]*entity.MenuItem, error)
	// ListActiveWithRecipe devuelve platillos activos con receta ligada; lo usa
	// el cálculo de alertas de stock.
	ListActiveWithRecipe() ([]*entity.MenuItem, error)
	SoftDelete(id int64) error
}
