package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL (usable con pool o tx).
// Las variaciones viven como JSONB en menu_items.variations.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de persistencia para el menú. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

func marshalVariations(groups []entity.VariationGroup) ([]byte, error) {
	if groups == nil {
		groups = []entity.VariationGroup{}
	}
	b, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("marshal variations: %w", err)
	}
	return b, nil
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	var variations []byte
	err := row.Scan(&m.ID, &m.Name, &m.RecipeID, &m.Price, &m.Description, &variations,
		&m.Category, &m.Icon, &m.IsActive, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt)
	if err != nil {
		return nil, err
	}
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &m.Variations); err != nil {
			return nil, fmt.Errorf("unmarshal variations: %w", err)
		}
	}
	return &m, nil
}

const menuItemColumns = `id, name, recipe_id, price, description, variations, category, icon, is_active, created_at, updated_at, deleted_at`

// Create persiste un platillo y asigna m.ID.
func (r *MenuItemRepo) Create(m *entity.MenuItem) error {
	variations, err := marshalVariations(m.Variations)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(context.Background(), `
		INSERT INTO menu_items (name, recipe_id, price, description, variations, category, icon, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		m.Name, m.RecipeID, m.Price, m.Description, variations, m.Category, m.Icon, m.IsActive,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// Update actualiza un platillo, variaciones incluidas.
func (r *MenuItemRepo) Update(m *entity.MenuItem) error {
	variations, err := marshalVariations(m.Variations)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), `
		UPDATE menu_items
		SET name = $2, recipe_id = $3, price = $4, description = $5, variations = $6,
		    category = $7, icon = $8, is_active = $9, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`,
		m.ID, m.Name, m.RecipeID, m.Price, m.Description, variations, m.Category, m.Icon, m.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un platillo por ID. Devuelve (nil, nil) si no existe o está borrado.
func (r *MenuItemRepo) GetByID(id int64) (*entity.MenuItem, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1 AND deleted_at IS NULL`, id)
	m, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return m, nil
}

// GetActiveByName busca por nombre exacto entre platillos activos y no borrados.
// Devuelve (nil, nil) si no existe.
func (r *MenuItemRepo) GetActiveByName(name string) (*entity.MenuItem, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+menuItemColumns+` FROM menu_items
		 WHERE name = $1 AND is_active AND deleted_at IS NULL`, name)
	m, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item by name: %w", err)
	}
	return m, nil
}

// List lista platillos no borrados; con onlyActive filtra por is_active.
func (r *MenuItemRepo) List(onlyActive bool) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE deleted_at IS NULL`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// ListActiveWithRecipe lista platillos activos con receta ligada, para alertas de stock.
func (r *MenuItemRepo) ListActiveWithRecipe() ([]*entity.MenuItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+menuItemColumns+` FROM menu_items
		 WHERE is_active AND recipe_id IS NOT NULL AND deleted_at IS NULL
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list menu items with recipe: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

func collectMenuItems(rows pgx.Rows) ([]*entity.MenuItem, error) {
	var list []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SoftDelete marca el platillo como borrado.
func (r *MenuItemRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete menu item: %w", err)
	}
	return nil
}
