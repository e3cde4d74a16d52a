package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// UpdateIfVersionMatches sigue el contrato documentado en UserRepository.
// Delete devuelve domain.ErrReferenced si existen productos que lo referencian.
type SupplierRepository interface {
	Insert(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	GetByKey(ctx context.Context, key int64) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	ListAll(ctx context.Context) ([]*entity.Supplier, error)
	UpdateIfVersionMatches(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	Delete(ctx context.Context, key int64) error
}
