package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/pkg/jwt"
)

// Locals keys para los datos del sujeto autenticado en Fiber.
const (
	LocalSubjectKey = "subject_key"
	LocalEmail      = "email"
	LocalRole       = "role"
)

// AuthMiddleware valida el Bearer Token JWT y copia clave, email y rol del
// sujeto a c.Locals. Un rol vacío identifica tokens de cliente.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "token inválido o expirado"})
		}
		key, err := claims.SubjectKey()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubjectKey, key)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetSubjectKey devuelve la clave del sujeto autenticado (0 si no hay).
func GetSubjectKey(c *fiber.Ctx) int64 {
	v := c.Locals(LocalSubjectKey)
	if v == nil {
		return 0
	}
	k, _ := v.(int64)
	return k
}

// GetRole devuelve el rol del token ("" para tokens de cliente).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
