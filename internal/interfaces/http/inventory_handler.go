package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/pdf"
)

// InventoryHandler maneja las lecturas de inventario: resumen, alertas y
// reporte PDF (protegido).
type InventoryHandler struct {
	ledgerUC *inventory.LedgerUseCase
	alertsUC *inventory.AlertsUseCase
	report   *pdf.StockReportGenerator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledgerUC *inventory.LedgerUseCase, alertsUC *inventory.AlertsUseCase, report *pdf.StockReportGenerator) *InventoryHandler {
	return &InventoryHandler{ledgerUC: ledgerUC, alertsUC: alertsUC, report: report}
}

// Summary godoc
// @Summary      Resumen de inventario (compras menos consumos)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	levels, err := h.ledgerUC.CurrentStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.NewStockLevelResponse(l))
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de platillos con pocas porciones servibles
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de porciones"  default(2)
// @Success      200        {array}  entity.AlertEntry
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", inventory.DefaultAlertThreshold))
	alerts, err := h.alertsUC.ComputeAlerts(threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(alerts)
}

// Report godoc
// @Summary      Reporte de inventario en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	levels, err := h.ledgerUC.CurrentStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.report.GenerateStockReport(c.Context(), levels, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}
