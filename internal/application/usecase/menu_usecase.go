package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// MenuItemInput es la entrada de alta/edición de platillo del menú.
type MenuItemInput struct {
	Name        string
	RecipeID    *int64
	Price       decimal.Decimal
	Description string
	Variations  []entity.VariationGroup
	Category    string
	Icon        string
	IsActive    bool
}

// MenuUseCase maneja el CRUD de platillos del menú.
type MenuUseCase struct {
	menuRepo repository.MenuItemRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(menuRepo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{menuRepo: menuRepo}
}

func (in MenuItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("nombre de platillo requerido: %w", domain.ErrInvalidInput)
	}
	for _, group := range in.Variations {
		for _, opt := range group.Options {
			m := opt.IngredientMapping
			if m != nil && m.IsReplacement && m.ReplaceTarget == "" {
				return fmt.Errorf("opción %q marca reemplazo sin objetivo: %w", opt.Name, domain.ErrInvalidInput)
			}
		}
	}
	return nil
}

// Create da de alta un platillo.
func (uc *MenuUseCase) Create(in MenuItemInput) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Name:        in.Name,
		RecipeID:    in.RecipeID,
		Price:       in.Price,
		Description: in.Description,
		Variations:  in.Variations,
		Category:    defaultCategory(in.Category),
		Icon:        in.Icon,
		IsActive:    in.IsActive,
	}
	if err := uc.menuRepo.Create(m); err != nil {
		return nil, fmt.Errorf("crear platillo: %w", err)
	}
	return m, nil
}

// Update edita un platillo existente.
func (uc *MenuUseCase) Update(id int64, in MenuItemInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	existing, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.Name = in.Name
	existing.RecipeID = in.RecipeID
	existing.Price = in.Price
	existing.Description = in.Description
	existing.Variations = in.Variations
	existing.Category = defaultCategory(in.Category)
	existing.Icon = in.Icon
	existing.IsActive = in.IsActive
	if err := uc.menuRepo.Update(existing); err != nil {
		return fmt.Errorf("actualizar platillo %d: %w", id, err)
	}
	return nil
}

// List devuelve platillos; con onlyActive filtra los inactivos.
func (uc *MenuUseCase) List(onlyActive bool) ([]*entity.MenuItem, error) {
	return uc.menuRepo.List(onlyActive)
}

// Delete borra lógicamente el platillo.
func (uc *MenuUseCase) Delete(id int64) error {
	return uc.menuRepo.SoftDelete(id)
}

func defaultCategory(c string) string {
	if strings.TrimSpace(c) == "" {
		return "General"
	}
	return c
}
