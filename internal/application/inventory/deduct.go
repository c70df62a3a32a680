package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// LineTypeCXCPayment marca una línea de venta que liquida una deuda CXC: no es
// producto y nunca genera consumos de inventario.
const LineTypeCXCPayment = "cxc_payment"

// SoldLineItem es una línea vendida tal como llega del punto de venta.
// ProductName puede venir decorado ("Café Americano (Grande)"); BaseName, si
// viene, es el nombre canónico del catálogo. Options son etiquetas de variación
// en texto libre.
type SoldLineItem struct {
	ProductName string
	BaseName    string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Options     []string
	Type        string // vacío = normal; "cxc_payment" = abono a deuda
	CXCID       *int64 // id de la CXC que liquida una línea cxc_payment
	Notes       string
}

// ValidateLineItems rechaza líneas malformadas antes de abrir la transacción:
// sin nombre o con cantidad no positiva. Una línea inválida nunca debe llegar a
// coaccionarse a cero dentro del descuento.
func ValidateLineItems(items []SoldLineItem) error {
	for i, item := range items {
		if domaininv.LookupName(item.BaseName, item.ProductName) == "" {
			return fmt.Errorf("línea %d sin nombre de producto: %w", i, domain.ErrInvalidInput)
		}
		if !item.Quantity.IsPositive() {
			return fmt.Errorf("línea %d (%s) con cantidad no positiva %s: %w",
				i, item.ProductName, item.Quantity, domain.ErrInvalidInput)
		}
	}
	return nil
}

// DeductUseCase descuenta inventario por líneas vendidas dentro de la
// transacción del caller (venta o pedido).
type DeductUseCase struct {
	resolver *Resolver
	names    domaininv.ProductNames
	log      *logger.Logger
}

// NewDeductUseCase construye el caso de uso.
func NewDeductUseCase(resolver *Resolver, names domaininv.ProductNames, log *logger.Logger) *DeductUseCase {
	return &DeductUseCase{resolver: resolver, names: names, log: log}
}

// DeductLine procesa una línea vendida usando los repositorios atados a la
// transacción en curso. Exactamente uno de saleID/orderID debe venir poblado.
//
// Reglas:
//   - Línea cxc_payment: sin efecto de inventario.
//   - Receta no resuelta: se registra y se omite la línea, sin error (una
//     receta faltante es negocio normal para platillos recién dados de alta).
//   - Reemplazos de variación eliminan por completo la línea base objetivo.
//   - Cantidades escalan linealmente: cantidad por unidad × cantidad vendida.
//   - Cualquier fallo de inserción se propaga para abortar la transacción
//     completa: un descuento parcial nunca debe ser observable.
func (uc *DeductUseCase) DeductLine(repos TxRepos, item SoldLineItem, saleID, orderID *int64, batchID string) error {
	if item.Type == LineTypeCXCPayment {
		return nil
	}

	lookup := domaininv.LookupName(item.BaseName, item.ProductName)
	res, err := uc.resolver.Resolve(repos.Menu, repos.Recipes, lookup)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotResolved) {
			uc.log.Info().Str("lookup", lookup).Str("display", item.ProductName).
				Msg("sin receta para la línea vendida, se omite descuento de inventario")
			return nil
		}
		return err
	}

	ingredients, err := repos.Recipes.ListIngredients(res.RecipeID)
	if err != nil {
		return fmt.Errorf("ingredientes de receta %d: %w", res.RecipeID, err)
	}

	delta := domaininv.IngredientDelta{}
	if res.MenuItem != nil && len(item.Options) > 0 {
		delta = domaininv.ComputeIngredientDelta(res.MenuItem.Variations, item.Options)
	} else if len(item.Options) > 0 {
		uc.log.Debug().Str("lookup", lookup).
			Msg("línea con opciones pero sin platillo ligado para resolverlas")
	}

	suppress := make(map[string]struct{}, len(delta.Suppress))
	for target := range delta.Suppress {
		suppress[uc.names.Canonical(target)] = struct{}{}
	}

	final := make([]domaininv.IngredientQuantity, 0, len(ingredients)+len(delta.Extra))
	for _, ing := range ingredients {
		if _, replaced := suppress[uc.names.Canonical(ing.ProductName)]; replaced {
			continue
		}
		final = append(final, domaininv.IngredientQuantity{
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		})
	}
	final = append(final, delta.Extra...)

	if len(final) == 0 {
		uc.log.Debug().Str("lookup", lookup).Msg("cero ingredientes a descontar")
		return nil
	}

	records := make([]*entity.UsageRecord, 0, len(final))
	for _, ing := range final {
		records = append(records, &entity.UsageRecord{
			BatchID:     batchID,
			SaleID:      saleID,
			OrderID:     orderID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity.Mul(item.Quantity),
			Unit:        ing.Unit,
		})
	}
	if err := repos.Usage.CreateBatch(records); err != nil {
		return fmt.Errorf("insertar consumos de %q: %w", lookup, err)
	}

	uc.log.Debug().Str("lookup", lookup).Int("ingredientes", len(records)).
		Str("batch", batchID).Msg("inventario descontado")
	return nil
}
