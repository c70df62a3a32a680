package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// RecipeIngredientInput es un ingrediente en el alta/edición de receta.
type RecipeIngredientInput struct {
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
}

// RecipeInput es la entrada de alta/edición de receta.
type RecipeInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	IsPublic    bool
	Ingredients []RecipeIngredientInput
}

// RecipeWithIngredients es una receta con su lista de ingredientes, para
// respuestas de lectura.
type RecipeWithIngredients struct {
	Recipe      *entity.Recipe
	Ingredients []*entity.RecipeIngredient
}

// RecipeUseCase maneja el CRUD de recetas. La edición de ingredientes es
// borrar-y-reinsertar dentro de una transacción, nunca parche incremental.
type RecipeUseCase struct {
	txRunner   appinv.TxRunner
	recipeRepo repository.RecipeRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(txRunner appinv.TxRunner, recipeRepo repository.RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{txRunner: txRunner, recipeRepo: recipeRepo}
}

func (in RecipeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("nombre de receta requerido: %w", domain.ErrInvalidInput)
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.ProductName) == "" {
			return fmt.Errorf("ingrediente %d sin producto: %w", i, domain.ErrInvalidInput)
		}
	}
	return nil
}

func (in RecipeInput) ingredients(recipeID int64) []*entity.RecipeIngredient {
	out := make([]*entity.RecipeIngredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		out = append(out, &entity.RecipeIngredient{
			RecipeID:    recipeID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		})
	}
	return out
}

// Create da de alta la receta y sus ingredientes en una transacción.
func (uc *RecipeUseCase) Create(ctx context.Context, in RecipeInput) (*entity.Recipe, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var recipe *entity.Recipe
	err := uc.txRunner.Run(ctx, func(repos appinv.TxRepos) error {
		r := &entity.Recipe{
			Name:     in.Name,
			Price:    in.Price,
			Category: in.Category,
			IsPublic: in.IsPublic,
		}
		if err := repos.Recipes.Create(r); err != nil {
			return err
		}
		if err := repos.Recipes.ReplaceIngredients(r.ID, in.ingredients(r.ID)); err != nil {
			return err
		}
		recipe = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crear receta: %w", err)
	}
	return recipe, nil
}

// Update edita la receta y reemplaza su lista de ingredientes completa en una
// transacción.
func (uc *RecipeUseCase) Update(ctx context.Context, id int64, in RecipeInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	err := uc.txRunner.Run(ctx, func(repos appinv.TxRepos) error {
		existing, err := repos.Recipes.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		existing.Name = in.Name
		existing.Price = in.Price
		existing.Category = in.Category
		existing.IsPublic = in.IsPublic
		if err := repos.Recipes.Update(existing); err != nil {
			return err
		}
		return repos.Recipes.ReplaceIngredients(id, in.ingredients(id))
	})
	if err != nil {
		return fmt.Errorf("actualizar receta %d: %w", id, err)
	}
	return nil
}

// List devuelve todas las recetas no borradas con sus ingredientes.
func (uc *RecipeUseCase) List() ([]*RecipeWithIngredients, error) {
	recipes, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	all, err := uc.recipeRepo.ListAllIngredients()
	if err != nil {
		return nil, err
	}
	byRecipe := make(map[int64][]*entity.RecipeIngredient)
	for _, ing := range all {
		byRecipe[ing.RecipeID] = append(byRecipe[ing.RecipeID], ing)
	}
	out := make([]*RecipeWithIngredients, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, &RecipeWithIngredients{Recipe: r, Ingredients: byRecipe[r.ID]})
	}
	return out, nil
}

// Delete borra lógicamente la receta.
func (uc *RecipeUseCase) Delete(id int64) error {
	return uc.recipeRepo.SoftDelete(id)
}
