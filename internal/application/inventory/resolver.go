package inventory

import (
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// Resolution es el resultado de resolver la receta de una línea vendida.
// MenuItem puede venir poblado aunque la receta se haya resuelto por nombre
// directo: sus variaciones siguen aplicando al cálculo de ingredientes.
type Resolution struct {
	RecipeID int64
	MenuItem *entity.MenuItem
}

// Resolver encuentra la receta asociada a un nombre de producto vendido.
type Resolver struct {
	log *logger.Logger
}

// NewResolver construye el resolutor.
func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve busca la receta para lookupName (ya recortado por el caller), en este
// orden y gana la primera coincidencia:
//
//  1. Platillo activo no borrado con nombre exacto (case-sensitive) que tenga
//     receta ligada.
//  2. Receta con nombre exacto.
//
// Sin coincidencia devuelve domain.ErrRecipeNotResolved: el caller omite los
// efectos de inventario de esa línea sin abortar la transacción. No hay fuzzy
// matching ni normalización de acentos; un desajuste de texto produce
// NotResolved silencioso.
func (r *Resolver) Resolve(menuRepo repository.MenuItemRepository, recipeRepo repository.RecipeRepository, lookupName string) (*Resolution, error) {
	menuItem, err := menuRepo.GetActiveByName(lookupName)
	if err != nil {
		return nil, fmt.Errorf("buscar platillo %q: %w", lookupName, err)
	}
	if menuItem != nil && menuItem.RecipeID != nil {
		r.log.Debug().Str("lookup", lookupName).Int64("recipe_id", *menuItem.RecipeID).
			Msg("receta resuelta vía platillo del menú")
		return &Resolution{RecipeID: *menuItem.RecipeID, MenuItem: menuItem}, nil
	}

	recipe, err := recipeRepo.GetByName(lookupName)
	if err != nil {
		return nil, fmt.Errorf("buscar receta %q: %w", lookupName, err)
	}
	if recipe != nil {
		r.log.Debug().Str("lookup", lookupName).Int64("recipe_id", recipe.ID).
			Msg("receta resuelta por nombre directo")
		return &Resolution{RecipeID: recipe.ID, MenuItem: menuItem}, nil
	}

	return nil, domain.ErrRecipeNotResolved
}
