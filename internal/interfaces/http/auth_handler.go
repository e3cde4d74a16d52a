package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/auth"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
)

// AuthHandler maneja login de usuarios y login/registro de clientes.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginUser godoc
// @Summary      Iniciar sesión de usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserLoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.MessageResponse
// @Router       /api/user-auth/login [post]
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var in dto.UserLoginRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.LoginUser(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Credenciales inválidas."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error."})
	}
	return c.JSON(out)
}

// LoginCustomer godoc
// @Summary      Iniciar sesión de cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerLoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.MessageResponse
// @Router       /api/customer-auth/login [post]
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var in dto.CustomerLoginRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.LoginCustomer(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Credenciales inválidas."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error."})
	}
	return c.JSON(out)
}

// RegisterCustomer godoc
// @Summary      Registrar cliente y emitir token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerCreateRequest  true  "datos del cliente"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/customer-auth/register [post]
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in dto.CustomerCreateRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	_, token, err := h.uc.RegisterCustomer(c.Context(), in)
	if err != nil {
		if rv, ok := domain.AsRuleViolation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: rv.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error."})
	}
	return c.Status(fiber.StatusCreated).JSON(token)
}
