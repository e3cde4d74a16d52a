package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// UpdateIfVersionMatches sigue el contrato documentado en UserRepository.
type CategoryRepository interface {
	Insert(ctx context.Context, c *entity.Category) (*entity.Category, error)
	GetByKey(ctx context.Context, key int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
	UpdateIfVersionMatches(ctx context.Context, c *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, key int64) error
}
