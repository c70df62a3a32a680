package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// RecipeIngredientRequest ingrediente en alta/edición de receta.
type RecipeIngredientRequest struct {
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// RecipeRequest body para POST/PUT /api/recipes.
type RecipeRequest struct {
	Name        string                    `json:"name"`
	Price       decimal.Decimal           `json:"price"`
	Category    string                    `json:"category"`
	IsPublic    bool                      `json:"isPublic"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
}

// RecipeResponse receta con ingredientes.
type RecipeResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Price       decimal.Decimal           `json:"price"`
	Category    string                    `json:"category"`
	IsPublic    bool                      `json:"isPublic"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
}

// NewRecipeResponse mapea receta + ingredientes a la respuesta.
func NewRecipeResponse(r *entity.Recipe, ingredients []*entity.RecipeIngredient) RecipeResponse {
	ings := make([]RecipeIngredientRequest, 0, len(ingredients))
	for _, ing := range ingredients {
		ings = append(ings, RecipeIngredientRequest{
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		})
	}
	return RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		IsPublic:    r.IsPublic,
		Ingredients: ings,
	}
}

// MenuItemRequest body para POST/PUT /api/menu.
type MenuItemRequest struct {
	Name        string                  `json:"name"`
	RecipeID    *int64                  `json:"recipeId,omitempty"`
	Price       decimal.Decimal         `json:"price"`
	Description string                  `json:"description,omitempty"`
	Variations  []entity.VariationGroup `json:"variations,omitempty"`
	Category    string                  `json:"category,omitempty"`
	Icon        string                  `json:"icon,omitempty"`
	IsActive    *bool                   `json:"isActive,omitempty"` // nil = activo
}

// Active devuelve el flag con default true.
func (r MenuItemRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// MenuItemResponse platillo del menú.
type MenuItemResponse struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	RecipeID    *int64                  `json:"recipeId,omitempty"`
	Price       decimal.Decimal         `json:"price"`
	Description string                  `json:"description,omitempty"`
	Variations  []entity.VariationGroup `json:"variations"`
	Category    string                  `json:"category"`
	Icon        string                  `json:"icon,omitempty"`
	IsActive    bool                    `json:"isActive"`
}

// NewMenuItemResponse mapea la entidad a la respuesta.
func NewMenuItemResponse(m *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		RecipeID:    m.RecipeID,
		Price:       m.Price,
		Description: m.Description,
		Variations:  m.Variations,
		Category:    m.Category,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
	}
}
