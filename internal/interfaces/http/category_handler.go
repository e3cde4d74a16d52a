package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// GetByKey godoc
// @Summary      Obtener categoría por clave
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        key  path  int  true  "Clave"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/category/{key} [get]
func (h *CategoryHandler) GetByKey(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByKey(c.Context(), key)
	if err != nil {
		return respondDomainError(c, err, "Category", "category", key)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Category with key %d not found.", key)})
	}
	return c.JSON(out)
}

// GetByName GET /api/category/name/:name
func (h *CategoryHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		return respondDomainError(c, err, "Category", "category", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("Category with name %s not found.", name)})
	}
	return c.JSON(out)
}

// ListAll GET /api/category/all (404 con lista vacía, comportamiento histórico
// de la API).
func (h *CategoryHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Category", "category", 0)
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Categories not found."})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CategoryCreateRequest  true  "datos"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/category [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "Category", "category", 0)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (concurrencia optimista por RowVersion)
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        key   path  int  true  "Clave"
// @Param        body  body  dto.CategoryUpdateRequest  true  "datos con row_version leído"
// @Success      204
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/category/{key} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	var in dto.CategoryUpdateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if in.Key != key {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Category key mismatch."})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return respondDomainError(c, err, "Category", "category", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/category/:key
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), key); err != nil {
		return respondDomainError(c, err, "Category", "category", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
