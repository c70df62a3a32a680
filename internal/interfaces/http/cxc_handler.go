package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// CXCHandler maneja las peticiones HTTP para cuentas por cobrar (protegido).
type CXCHandler struct {
	uc *usecase.CXCUseCase
}

// NewCXCHandler construye el handler.
func NewCXCHandler(uc *usecase.CXCUseCase) *CXCHandler {
	return &CXCHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cuenta por cobrar
// @Tags         cxc
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CXCRequest  true  "Datos de la deuda"
// @Success      201   {object}  dto.CXCResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cxc [post]
func (h *CXCHandler) Create(c *fiber.Ctx) error {
	var in dto.CXCRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cxc := &entity.CXC{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Amount:        in.Amount,
		SaleID:        in.SaleID,
		Notes:         in.Notes,
		UserID:        userIDPtr(c),
	}
	if err := h.uc.Create(cxc); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCXCResponse(cxc))
}

// List godoc
// @Summary      Listar cuentas por cobrar
// @Tags         cxc
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (Pending o Paid)"
// @Success      200     {array}  dto.CXCResponse
// @Router       /api/cxc [get]
func (h *CXCHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CXCResponse, 0, len(list))
	for _, cx := range list {
		out = append(out, dto.NewCXCResponse(cx))
	}
	return c.JSON(out)
}

// MarkPaid godoc
// @Summary      Marcar cuenta por cobrar como pagada
// @Tags         cxc
// @Security     Bearer
// @Param        id  path  int  true  "ID de la deuda"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cxc/{id}/pay [put]
func (h *CXCHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkPaid(int64(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
