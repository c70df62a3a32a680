package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// CustomerHandler maneja las lecturas de clientes (protegido). El alta real
// ocurre como upsert al registrar pedidos.
type CustomerHandler struct {
	repo repository.CustomerRepository
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]fiber.Map, 0, len(list))
	for _, cu := range list {
		out = append(out, fiber.Map{"id": cu.ID, "name": cu.Name, "phone": cu.Phone})
	}
	return c.JSON(out)
}
