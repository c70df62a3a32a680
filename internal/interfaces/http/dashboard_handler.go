package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
)

// DashboardHandler maneja las lecturas del tablero de ventas (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día: ventas, pedidos, meta y CXC
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicio YYYY-MM-DD (default hoy)"
// @Param        to    query  string  false  "Fecha fin YYYY-MM-DD (default hoy)"
// @Success      200   {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	from, to, err := usecase.DayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	s, err := h.uc.Summary(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardSummaryResponse{
		TotalSales:  s.TotalSales,
		TotalOrders: s.TotalOrders,
		Goal:        s.Goal,
		TotalCXC:    s.TotalCXC,
	})
}

// TopProducts godoc
// @Summary      Productos más vendidos del rango
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Fecha inicio YYYY-MM-DD (default hoy)"
// @Param        to     query  string  false  "Fecha fin YYYY-MM-DD (default hoy)"
// @Param        limit  query  int     false  "Cantidad de productos"  default(5)
// @Success      200    {array}  dto.TopProductResponse
// @Router       /api/dashboard/top-products [get]
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	from, to, err := usecase.DayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	top, err := h.uc.TopProducts(from, to, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TopProductResponse, 0, len(top))
	for _, tp := range top {
		out = append(out, dto.TopProductResponse{
			ProductName: tp.ProductName,
			TotalQty:    tp.TotalQty,
			TotalAmount: tp.TotalAmount,
		})
	}
	return c.JSON(out)
}
