package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateIfVersionMatches sigue el contrato documentado en UserRepository.
type ProductRepository interface {
	Insert(ctx context.Context, p *entity.Product) (*entity.Product, error)
	GetByKey(ctx context.Context, key int64) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	UpdateIfVersionMatches(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, key int64) error
}
