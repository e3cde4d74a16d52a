package usecase

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain"
)

// uniqueCheck describe una regla de unicidad sobre un campo: cómo buscar el
// registro existente y qué mensaje reportar si colisiona.
type uniqueCheck struct {
	field   string
	message string
	find    func(ctx context.Context) (key int64, found bool, err error)
}

// firstViolation evalúa las reglas en su orden declarado y corta en la primera
// colisión con un registro cuya clave difiera de selfKey (0 en creación, dado
// que las claves generadas arrancan en 1). Solo lee; nunca escribe.
func firstViolation(ctx context.Context, selfKey int64, checks ...uniqueCheck) error {
	for _, c := range checks {
		key, found, err := c.find(ctx)
		if err != nil {
			return err
		}
		if found && key != selfKey {
			return &domain.RuleViolation{Field: c.field, Message: c.message}
		}
	}
	return nil
}

// findKey adapta un lookup estilo repositorio (registro o nil) al contrato
// de uniqueCheck.
func findKey[T Versioned](lookup func(ctx context.Context) (T, error)) func(ctx context.Context) (int64, bool, error) {
	return func(ctx context.Context) (int64, bool, error) {
		var zero T
		rec, err := lookup(ctx)
		if err != nil {
			return 0, false, err
		}
		if rec == zero {
			return 0, false, nil
		}
		return rec.RecordKey(), true, nil
	}
}
