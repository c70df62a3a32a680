package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	appinv "github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// TicketInput es la entrada de alta de un ticket de compra (solo el total; las
// partidas llegan después con el desglose).
type TicketInput struct {
	TicketRef     string
	Provider      string
	Total         decimal.Decimal
	PaymentMethod string
	PurchaseDate  *time.Time
	UserID        *int64
}

// TicketItemInput es una partida del desglose.
type TicketItemInput struct {
	Product   string
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Type      string // Insumo, Terminado, Operativo; vacío = Insumo
}

// TicketUseCase maneja tickets de compra y su desglose en partidas. Las
// partidas alimentan el lado positivo del libro de inventario.
type TicketUseCase struct {
	txRunner   appinv.TxRunner
	ticketRepo repository.TicketRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(txRunner appinv.TxRunner, ticketRepo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{txRunner: txRunner, ticketRepo: ticketRepo}
}

// Create registra el ticket con estado "No Desglosado".
func (uc *TicketUseCase) Create(in TicketInput) (*entity.Ticket, error) {
	if strings.TrimSpace(in.TicketRef) == "" || strings.TrimSpace(in.Provider) == "" {
		return nil, fmt.Errorf("folio y proveedor requeridos: %w", domain.ErrInvalidInput)
	}
	t := &entity.Ticket{
		TicketRef:     in.TicketRef,
		Provider:      in.Provider,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.TicketStatusPending,
		PurchaseDate:  in.PurchaseDate,
		UserID:        in.UserID,
	}
	if err := uc.ticketRepo.Create(t); err != nil {
		return nil, fmt.Errorf("crear ticket: %w", err)
	}
	return t, nil
}

// Breakdown reemplaza el desglose completo del ticket y lo marca "Desglosado",
// en una sola transacción. No es parche incremental: las partidas anteriores se
// descartan.
func (uc *TicketUseCase) Breakdown(ctx context.Context, ticketID int64, items []TicketItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("desglose sin partidas: %w", domain.ErrInvalidInput)
	}
	rows := make([]*entity.TicketItem, 0, len(items))
	for i, in := range items {
		if strings.TrimSpace(in.Product) == "" {
			return fmt.Errorf("partida %d sin producto: %w", i, domain.ErrInvalidInput)
		}
		if !in.Quantity.IsPositive() {
			return fmt.Errorf("partida %d (%s) con cantidad no positiva: %w", i, in.Product, domain.ErrInvalidInput)
		}
		lineType := in.Type
		if lineType == "" {
			lineType = entity.LineTypeInsumo
		}
		switch lineType {
		case entity.LineTypeInsumo, entity.LineTypeTerminado, entity.LineTypeOperativo:
		default:
			return fmt.Errorf("partida %d con tipo %q: %w", i, in.Type, domain.ErrInvalidInput)
		}
		rows = append(rows, &entity.TicketItem{
			TicketID:  ticketID,
			Product:   in.Product,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			UnitPrice: in.UnitPrice,
			Discount:  in.Discount,
			Total:     in.Total,
			Type:      lineType,
		})
	}

	err := uc.txRunner.Run(ctx, func(repos appinv.TxRepos) error {
		t, err := repos.Tickets.GetByID(ticketID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		return repos.Tickets.ReplaceItems(ticketID, entity.TicketStatusBrokenDown, rows)
	})
	if err != nil {
		return fmt.Errorf("desglosar ticket %d: %w", ticketID, err)
	}
	return nil
}

// List devuelve tickets paginados.
func (uc *TicketUseCase) List(limit, offset int) ([]*entity.Ticket, error) {
	return uc.ticketRepo.List(limit, offset)
}

// ListItems devuelve las partidas de un ticket.
func (uc *TicketUseCase) ListItems(ticketID int64) ([]*entity.TicketItem, error) {
	return uc.ticketRepo.ListItems(ticketID)
}

// Delete borra lógicamente el ticket; sus partidas dejan de contar en el libro
// de inventario.
func (uc *TicketUseCase) Delete(id int64) error {
	return uc.ticketRepo.SoftDelete(id)
}
