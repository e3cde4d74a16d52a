package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
)

var validate = validator.New()

func init() {
	// decimal.Decimal se valida como float64 para que gt=0, lt=... funcionen
	// sin panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate parsea el body JSON y corre las tags de validator.
// Devuelve false si ya escribió la respuesta de error; el caller debe
// retornar nil de inmediato.
func bindAndValidate(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Message: fmt.Sprintf("Field '%s' failed validation on '%s'.", fe.Field(), fe.Tag()),
			})
			return false
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
		return false
	}
	return true
}

// keyParam parsea el :key del path. Devuelve false si ya respondió 400.
func keyParam(c *fiber.Ctx) (int64, bool) {
	key, err := strconv.ParseInt(c.Params("key"), 10, 64)
	if err != nil || key <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid key."})
		return 0, false
	}
	return key, true
}

// respondDomainError traduce errores de dominio al contrato HTTP.
// singular en minúscula para el mensaje de conflicto ("the category was
// modified..."), con mayúscula inicial para el de not found.
func respondDomainError(c *fiber.Ctx, err error, entityTitle, entityLower string, key int64) error {
	if rv, ok := domain.AsRuleViolation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: rv.Message})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: fmt.Sprintf("%s with key %d not found.", entityTitle, key),
		})
	case errors.Is(err, domain.ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{
			Message: fmt.Sprintf("The %s was modified by another user. Please reload and try again.", entityLower),
		})
	case errors.Is(err, domain.ErrReferenced):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "A database update error occurred. Check your data.",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error."})
}
