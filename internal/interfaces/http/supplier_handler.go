package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP de proveedores (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// GetByKey GET /api/supplier/:key
func (h *SupplierHandler) GetByKey(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByKey(c.Context(), key)
	if err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", key)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Supplier with key %d not found.", key)})
	}
	return c.JSON(out)
}

// GetByName GET /api/supplier/name/:name
func (h *SupplierHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Supplier with name %s not found.", name)})
	}
	return c.JSON(out)
}

// ListAll GET /api/supplier/all
func (h *SupplierHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", 0)
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Suppliers not found."})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SupplierCreateRequest  true  "datos"
// @Success      201  {object}  dto.SupplierResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/supplier [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", 0)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/supplier/:key
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	var in dto.SupplierUpdateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if in.Key != key {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Supplier key mismatch."})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/supplier/:key. Un proveedor con productos asociados no
// se puede borrar (FK RESTRICT): 400 genérico.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), key); err != nil {
		return respondDomainError(c, err, "Supplier", "supplier", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
