package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// CreateOrderInput es la entrada para registrar un pedido.
type CreateOrderInput struct {
	CustomerName     string
	CustomerPhone    string
	DeliveryTime     string
	DeliveryLocation string
	PaymentMethod    string
	Notes            string
	Total            decimal.Decimal
	Items            []appinv.SoldLineItem
}

// UseCase maneja pedidos: alta transaccional con descuento de inventario,
// cambios de estado y consultas.
type UseCase struct {
	txRunner  appinv.TxRunner
	orderRepo repository.OrderRepository
	deduct    *appinv.DeductUseCase
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner appinv.TxRunner, orderRepo repository.OrderRepository, deduct *appinv.DeductUseCase, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, deduct: deduct, log: log}
}

// CreateOrder registra en una sola transacción: el pedido (estado Nuevo), sus
// líneas, el descuento de inventario por línea (consumos ligados al pedido) y
// el upsert del cliente por teléfono. Todo o nada.
func (uc *UseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("nombre de cliente requerido: %w", domain.ErrInvalidInput)
	}
	if err := appinv.ValidateLineItems(in.Items); err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	var order *entity.Order

	err := uc.txRunner.Run(ctx, func(repos appinv.TxRepos) error {
		o := &entity.Order{
			CustomerName:     in.CustomerName,
			CustomerPhone:    in.CustomerPhone,
			DeliveryTime:     in.DeliveryTime,
			DeliveryLocation: in.DeliveryLocation,
			PaymentMethod:    in.PaymentMethod,
			Notes:            in.Notes,
			Status:           entity.OrderStatusNew,
			Total:            in.Total,
		}
		if err := repos.Orders.Create(o); err != nil {
			return err
		}

		if len(in.Items) > 0 {
			orderItems := make([]*entity.OrderItem, 0, len(in.Items))
			for _, item := range in.Items {
				orderItems = append(orderItems, &entity.OrderItem{
					OrderID:     o.ID,
					ProductName: item.ProductName,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice,
					Total:       item.Total,
					Notes:       item.Notes,
					Options:     item.Options,
				})
			}
			if err := repos.Orders.AddItems(o.ID, orderItems); err != nil {
				return err
			}

			for _, item := range in.Items {
				if err := uc.deduct.DeductLine(repos, item, nil, &o.ID, batchID); err != nil {
					return err
				}
			}
		}

		if phone := strings.TrimSpace(in.CustomerPhone); phone != "" {
			if err := repos.Customers.UpsertByPhone(in.CustomerName, phone); err != nil {
				return err
			}
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("registrar pedido: %w", err)
	}

	uc.log.Info().Int64("order_id", order.ID).Int("items", len(in.Items)).Msg("pedido registrado")
	return order, nil
}

// UpdateStatus cambia el estado del pedido.
func (uc *UseCase) UpdateStatus(id int64, status string) error {
	switch status {
	case entity.OrderStatusNew, entity.OrderStatusPreparing, entity.OrderStatusDelivering, entity.OrderStatusCompleted:
	default:
		return fmt.Errorf("estado de pedido %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

// LatestID devuelve el id del pedido más reciente (0 si no hay pedidos).
func (uc *UseCase) LatestID() (int64, error) {
	return uc.orderRepo.LatestID()
}

// List devuelve pedidos paginados.
func (uc *UseCase) List(limit, offset int) ([]*entity.Order, error) {
	return uc.orderRepo.List(limit, offset)
}

// ListItems devuelve las líneas de un pedido.
func (uc *UseCase) ListItems(orderID int64) ([]*entity.OrderItem, error) {
	return uc.orderRepo.ListItems(orderID)
}
