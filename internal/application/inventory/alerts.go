package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// DefaultAlertThreshold es el umbral de porciones restantes a partir del cual
// se emite alerta.
const DefaultAlertThreshold = 2

// AlertsUseCase calcula alertas de stock bajo por platillo: cuántas porciones
// pueden prepararse todavía con el inventario actual.
type AlertsUseCase struct {
	menuRepo   repository.MenuItemRepository
	recipeRepo repository.RecipeRepository
	ledger     *LedgerUseCase
	names      domaininv.ProductNames
	log        *logger.Logger
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(
	menuRepo repository.MenuItemRepository,
	recipeRepo repository.RecipeRepository,
	ledger *LedgerUseCase,
	names domaininv.ProductNames,
	log *logger.Logger,
) *AlertsUseCase {
	return &AlertsUseCase{menuRepo: menuRepo, recipeRepo: recipeRepo, ledger: ledger, names: names, log: log}
}

// ComputeAlerts revisa cada platillo activo con receta ligada y al menos un
// ingrediente, y emite alerta cuando las porciones servibles quedan en o por
// debajo de threshold: "Agotado" con cero o menos (recortado a cero para
// presentación), "Bajo Stock" en otro caso. Recetas sin ingrediente con
// cantidad positiva no restringen y no alertan.
func (uc *AlertsUseCase) ComputeAlerts(threshold int64) ([]*entity.AlertEntry, error) {
	items, err := uc.menuRepo.ListActiveWithRecipe()
	if err != nil {
		return nil, fmt.Errorf("platillos con receta: %w", err)
	}
	alerts := []*entity.AlertEntry{}
	if len(items) == 0 {
		return alerts, nil
	}

	allIngredients, err := uc.recipeRepo.ListAllIngredients()
	if err != nil {
		return nil, fmt.Errorf("ingredientes de recetas: %w", err)
	}
	byRecipe := make(map[int64][]entity.RecipeIngredient)
	for _, ing := range allIngredients {
		byRecipe[ing.RecipeID] = append(byRecipe[ing.RecipeID], *ing)
	}

	stock, err := uc.ledger.StockMap()
	if err != nil {
		return nil, err
	}
	onHand := func(productName string) decimal.Decimal {
		return stock[uc.names.Canonical(productName)]
	}

	for _, item := range items {
		if item.RecipeID == nil {
			continue
		}
		ingredients := byRecipe[*item.RecipeID]
		if len(ingredients) == 0 {
			continue
		}

		portions, constrained := domaininv.MaxPortions(onHand, ingredients)
		if !constrained || portions > threshold {
			continue
		}

		status := entity.AlertStatusLow
		display := portions
		if portions <= 0 {
			status = entity.AlertStatusOut
			display = 0
		}
		alerts = append(alerts, &entity.AlertEntry{
			MenuItemID:        item.ID,
			Name:              item.Name,
			PortionsRemaining: display,
			Status:            status,
		})
	}

	uc.log.Debug().Int("platillos", len(items)).Int("alertas", len(alerts)).
		Msg("alertas de inventario calculadas")
	return alerts, nil
}
