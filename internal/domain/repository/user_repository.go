package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// Contrato de UpdateIfVersionMatches (compartido por todos los puertos):
// escritura única y atómica condicionada a que row_version coincida con el
// valor leído por el comando. El store es dueño del incremento de RowVersion
// y del sello de ModifiedAt; el protocolo nunca los calcula en cliente.
// Devuelve el registro ya materializado, domain.ErrVersionConflict si la
// versión avanzó, o domain.ErrNotFound si la fila desapareció.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByKey(ctx context.Context, key int64) (*entity.User, error)
	GetByIdentification(ctx context.Context, identification string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
	UpdateIfVersionMatches(ctx context.Context, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, key int64) error
}
