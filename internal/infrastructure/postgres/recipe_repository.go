package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de persistencia para recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una receta y asigna r.ID.
func (r *RecipeRepo) Create(rec *entity.Recipe) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO recipes (name, price, category, is_public)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		rec.Name, rec.Price, rec.Category, rec.IsPublic,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// Update actualiza los datos base de la receta (no sus ingredientes).
func (r *RecipeRepo) Update(rec *entity.Recipe) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE recipes SET name = $2, price = $3, category = $4, is_public = $5
		WHERE id = $1 AND deleted_at IS NULL`,
		rec.ID, rec.Name, rec.Price, rec.Category, rec.IsPublic,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID. Devuelve (nil, nil) si no existe o está borrada.
func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, price, category, is_public, created_at, deleted_at
		FROM recipes WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&rec.ID, &rec.Name, &rec.Price, &rec.Category, &rec.IsPublic, &rec.CreatedAt, &rec.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// GetByName busca una receta por nombre exacto entre no borradas. Devuelve (nil, nil) si no existe.
func (r *RecipeRepo) GetByName(name string) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, price, category, is_public, created_at, deleted_at
		FROM recipes WHERE name = $1 AND deleted_at IS NULL`, name,
	).Scan(&rec.ID, &rec.Name, &rec.Price, &rec.Category, &rec.IsPublic, &rec.CreatedAt, &rec.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe by name: %w", err)
	}
	return &rec, nil
}

// List lista recetas no borradas ordenadas por nombre.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, price, category, is_public, created_at, deleted_at
		FROM recipes WHERE deleted_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Price, &rec.Category, &rec.IsPublic,
			&rec.CreatedAt, &rec.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// SoftDelete marca la receta como borrada.
func (r *RecipeRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE recipes SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete recipe: %w", err)
	}
	return nil
}

// ReplaceIngredients borra y reinserta los ingredientes de la receta.
func (r *RecipeRepo) ReplaceIngredients(recipeID int64, ingredients []*entity.RecipeIngredient) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("delete recipe ingredients: %w", err)
	}
	for _, ing := range ingredients {
		err := r.q.QueryRow(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, product_name, quantity, unit)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			recipeID, ing.ProductName, ing.Quantity, ing.Unit,
		).Scan(&ing.ID)
		if err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
		ing.RecipeID = recipeID
	}
	return nil
}

// ListIngredients lista los ingredientes de una receta.
func (r *RecipeRepo) ListIngredients(recipeID int64) ([]*entity.RecipeIngredient, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, recipe_id, product_name, quantity, unit
		FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecipeIngredient
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.ProductName, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}

// ListAllIngredients lista los ingredientes de todas las recetas no borradas,
// en una sola consulta para el cálculo de alertas.
func (r *RecipeRepo) ListAllIngredients() ([]*entity.RecipeIngredient, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT ri.id, ri.recipe_id, ri.product_name, ri.quantity, ri.unit
		FROM recipe_ingredients ri
		JOIN recipes rec ON rec.id = ri.recipe_id AND rec.deleted_at IS NULL
		ORDER BY ri.recipe_id, ri.id`)
	if err != nil {
		return nil, fmt.Errorf("list all recipe ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecipeIngredient
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.ProductName, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}
