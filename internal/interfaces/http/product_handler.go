package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetByKey GET /api/product/:key
func (h *ProductHandler) GetByKey(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByKey(c.Context(), key)
	if err != nil {
		return respondDomainError(c, err, "Product", "product", key)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Product with key %d not found.", key)})
	}
	return c.JSON(out)
}

// GetByName GET /api/product/name/:name
func (h *ProductHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		return respondDomainError(c, err, "Product", "product", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Product with name %s not found.", name)})
	}
	return c.JSON(out)
}

// ListAll GET /api/product/all
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Product", "product", 0)
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Products not found."})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProductCreateRequest  true  "datos (image en base64)"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "Product", "product", 0)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (concurrencia optimista por RowVersion)
// @Tags         products
// @Accept       json
// @Security     BearerAuth
// @Param        key   path  int  true  "Clave"
// @Param        body  body  dto.ProductUpdateRequest  true  "datos con row_version leído"
// @Success      204
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/product/{key} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	var in dto.ProductUpdateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if in.Key != key {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Product key mismatch."})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return respondDomainError(c, err, "Product", "product", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/product/:key
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), key); err != nil {
		return respondDomainError(c, err, "Product", "product", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
