package usecase

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain"
)

// Versioned es el contrato mínimo que exige el protocolo de actualización
// optimista: clave inmutable y token de versión leído por el comando.
// Se exige comparable para poder detectar el snapshot ausente (puntero nil).
type Versioned interface {
	comparable
	RecordKey() int64
	RecordVersion() int64
}

// versionedStore es la vista mínima del puerto de persistencia que necesita
// el protocolo. Cualquier repositorio de domain/repository la satisface.
type versionedStore[T Versioned] interface {
	GetByKey(ctx context.Context, key int64) (T, error)
	UpdateIfVersionMatches(ctx context.Context, rec T) (T, error)
}

// updateVersioned ejecuta el protocolo de actualización compartido por las
// cinco entidades:
//
//  1. Snapshot fresco por clave, tomado justo antes del compare-and-write;
//     si la fila desapareció, ErrNotFound.
//  2. Comparación del RowVersion del snapshot contra el del comando; si
//     difieren, ErrVersionConflict sin tocar el almacenamiento.
//  3. Detección de cambios: unchanged recibe el snapshot y decide si el
//     comando no aporta diferencias en los campos mutables. En ese caso el
//     resultado es éxito no-op: sin escritura, sin incremento de RowVersion,
//     sin sello de ModifiedAt.
//  4. Compare-and-write atómico vía el store, que es dueño del incremento
//     de versión. Si entre el snapshot y la escritura otro escritor ganó,
//     el store reporta ErrVersionConflict (o ErrNotFound si borraron la fila).
//
// Nunca reintenta ni fusiona: el perdedor debe releer y reenviar.
func updateVersioned[T Versioned](ctx context.Context, store versionedStore[T], desired T, unchanged func(current T) bool) (T, error) {
	var zero T
	current, err := store.GetByKey(ctx, desired.RecordKey())
	if err != nil {
		return zero, err
	}
	if current == zero {
		return zero, domain.ErrNotFound
	}
	if current.RecordVersion() != desired.RecordVersion() {
		return zero, domain.ErrVersionConflict
	}
	if unchanged(current) {
		return current, nil
	}
	return store.UpdateIfVersionMatches(ctx, desired)
}

// eqPtr compara dos punteros por valor: iguales si ambos son nil o si ambos
// apuntan a valores iguales.
func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
