package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos los desenlaces
// esperados del protocolo de actualización son valores de retorno, nunca panics.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrVersionConflict = errors.New("conflicto de versión: el registro fue modificado por otro usuario")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrReferenced      = errors.New("el registro está referenciado por otros registros")
)

// RuleViolation es el resultado negativo de una regla de negocio de unicidad.
// No es una condición excepcional: se reporta con el campo en conflicto y un
// mensaje legible para el cliente.
type RuleViolation struct {
	Field   string
	Message string
}

func (v *RuleViolation) Error() string { return v.Message }

// AsRuleViolation extrae una RuleViolation de la cadena de errores, si la hay.
func AsRuleViolation(err error) (*RuleViolation, bool) {
	var v *RuleViolation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
