package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// GetByKey GET /api/customer/:key
func (h *CustomerHandler) GetByKey(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByKey(c.Context(), key)
	if err != nil {
		return respondDomainError(c, err, "Customer", "customer", key)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Customer with key %d not found.", key)})
	}
	return c.JSON(out)
}

// GetByIdentification GET /api/customer/identification/:identification
func (h *CustomerHandler) GetByIdentification(c *fiber.Ctx) error {
	identification := c.Params("identification")
	out, err := h.uc.GetByIdentification(c.Context(), identification)
	if err != nil {
		return respondDomainError(c, err, "Customer", "customer", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Customer with identification %s not found.", identification)})
	}
	return c.JSON(out)
}

// GetByEmail GET /api/customer/email/:email
func (h *CustomerHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	out, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondDomainError(c, err, "Customer", "customer", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Customer with email %s not found.", email)})
	}
	return c.JSON(out)
}

// ListAll GET /api/customer/all
func (h *CustomerHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Customer", "customer", 0)
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Customers not found."})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerCreateRequest  true  "datos (password en claro, se hashea)"
// @Success      201  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/customer [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "Customer", "customer", 0)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/customer/:key
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	var in dto.CustomerUpdateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if in.Key != key {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Customer key mismatch."})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return respondDomainError(c, err, "Customer", "customer", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/customer/:key
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), key); err != nil {
		return respondDomainError(c, err, "Customer", "customer", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
