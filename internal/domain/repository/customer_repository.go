package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// UpdateIfVersionMatches sigue el contrato documentado en UserRepository.
type CustomerRepository interface {
	Insert(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetByKey(ctx context.Context, key int64) (*entity.Customer, error)
	GetByIdentification(ctx context.Context, identification string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	UpdateIfVersionMatches(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, key int64) error
}
