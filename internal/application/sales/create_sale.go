package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// CreateSaleInput es la entrada para registrar una venta de mostrador.
type CreateSaleInput struct {
	Total         decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	UserID        *int64
	Items         []appinv.SoldLineItem
}

// CreateSaleUseCase registra la venta, sus líneas, los consumos de inventario
// y el cobro de deudas CXC en una sola transacción: todo o nada.
type CreateSaleUseCase struct {
	txRunner appinv.TxRunner
	deduct   *appinv.DeductUseCase
	log      *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner appinv.TxRunner, deduct *appinv.DeductUseCase, log *logger.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, deduct: deduct, log: log}
}

// CreateSale valida la entrada antes de abrir la transacción y después ejecuta,
// dentro de una sola tx: inserción de la venta, de sus líneas, descuento de
// inventario por línea y marcado Paid de la CXC cuando la línea es un abono.
// Una receta no resuelta no aborta; cualquier fallo de persistencia sí, con
// rollback completo.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in CreateSaleInput) (*entity.Sale, error) {
	if in.PaymentMethod == "" {
		return nil, fmt.Errorf("método de pago requerido: %w", domain.ErrInvalidInput)
	}
	if err := appinv.ValidateLineItems(in.Items); err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	var sale *entity.Sale

	err := uc.txRunner.Run(ctx, func(repos appinv.TxRepos) error {
		s := &entity.Sale{
			Total:         in.Total,
			PaymentMethod: in.PaymentMethod,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			UserID:        in.UserID,
		}
		if err := repos.Sales.Create(s); err != nil {
			return err
		}

		if len(in.Items) > 0 {
			saleItems := make([]*entity.SaleItem, 0, len(in.Items))
			for _, item := range in.Items {
				saleItems = append(saleItems, &entity.SaleItem{
					SaleID:      s.ID,
					ProductName: item.ProductName,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice,
					Total:       item.Total,
				})
			}
			if err := repos.Sales.AddItems(s.ID, saleItems); err != nil {
				return err
			}

			for _, item := range in.Items {
				if err := uc.deduct.DeductLine(repos, item, &s.ID, nil, batchID); err != nil {
					return err
				}
				if item.Type == appinv.LineTypeCXCPayment && item.CXCID != nil {
					if err := repos.CXC.MarkPaid(*item.CXCID); err != nil {
						return err
					}
				}
			}
		}

		sale = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("registrar venta: %w", err)
	}

	uc.log.Info().Int64("sale_id", sale.ID).Str("payment", in.PaymentMethod).
		Int("items", len(in.Items)).Msg("venta registrada")
	return sale, nil
}
