package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas y sus
// ingredientes. La edición de ingredientes es borrar-y-reinsertar dentro de la
// misma transacción, nunca parche incremental.
type RecipeRepository interface {
	Create(r *entity.Recipe) error
	Update(r *entity.Recipe) error
	GetByID(id int64) (*entity.Recipe, error)
	// GetByName busca por nombre exacto (case-sensitive) entre recetas no
	// borradas. Devuelve (nil, nil) si no existe.
	GetByName(name string) (*entity.Recipe, error)
	List() ([]*entity.Recipe, error)
	SoftDelete(id int64) error

	ReplaceIngredients(recipeID int64, ingredients []*entity.RecipeIngredient) error
	ListIngredients(recipeID int64) ([]*entity.RecipeIngredient, error)
	// ListAllIngredients devuelve los ingredientes de todas las recetas; lo usa
	// el cálculo de alertas para evitar una consulta por platillo.
	ListAllIngredients() ([]*entity.RecipeIngredient, error)
}
