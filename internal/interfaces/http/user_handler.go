package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetByKey GET /api/user/:key
func (h *UserHandler) GetByKey(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByKey(c.Context(), key)
	if err != nil {
		return respondDomainError(c, err, "User", "user", key)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("User with key %d not found.", key)})
	}
	return c.JSON(out)
}

// GetByIdentification GET /api/user/identification/:identification
func (h *UserHandler) GetByIdentification(c *fiber.Ctx) error {
	identification := c.Params("identification")
	out, err := h.uc.GetByIdentification(c.Context(), identification)
	if err != nil {
		return respondDomainError(c, err, "User", "user", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("User with identification %s not found.", identification)})
	}
	return c.JSON(out)
}

// GetByEmail GET /api/user/email/:email
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	out, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondDomainError(c, err, "User", "user", 0)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("User with email %s not found.", email)})
	}
	return c.JSON(out)
}

// ListAll GET /api/user/all
func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondDomainError(c, err, "User", "user", 0)
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Users not found."})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UserCreateRequest  true  "datos (password en claro, se hashea)"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "User", "user", 0)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/user/:key
func (h *UserHandler) Update(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	var in dto.UserUpdateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if in.Key != key {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "User key mismatch."})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return respondDomainError(c, err, "User", "user", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/user/:key
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	key, ok := keyParam(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), key); err != nil {
		return respondDomainError(c, err, "User", "user", key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
