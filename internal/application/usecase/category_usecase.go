package usecase

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida unicidad del nombre y persiste. El store asigna Key,
// CreationDate y RowVersion=0.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryCreateRequest) (*dto.CategoryResponse, error) {
	err := firstViolation(ctx, 0, uniqueCheck{
		field:   "name",
		message: "Category name is already in use.",
		find: findKey(func(ctx context.Context) (*entity.Category, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Insert(ctx, &entity.Category{Name: in.Name, CreatedBy: in.CreatedBy})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(created), nil
}

// GetByKey obtiene una categoría por clave. Devuelve nil si no existe.
func (uc *CategoryUseCase) GetByKey(ctx context.Context, key int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByKey(ctx, key)
	if err != nil || c == nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByName obtiene una categoría por nombre. Devuelve nil si no existe.
func (uc *CategoryUseCase) GetByName(ctx context.Context, name string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByName(ctx, name)
	if err != nil || c == nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListAll lista todas las categorías.
func (uc *CategoryUseCase) ListAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update aplica el protocolo versionado. Orden de chequeos como en el resto
// de entidades: existencia, unicidad contra otros registros, y recién después
// el compare-and-write.
func (uc *CategoryUseCase) Update(ctx context.Context, in dto.CategoryUpdateRequest) error {
	existing, err := uc.repo.GetByKey(ctx, in.Key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	err = firstViolation(ctx, in.Key, uniqueCheck{
		field:   "name",
		message: "Category name is already in use by another category.",
		find: findKey(func(ctx context.Context) (*entity.Category, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return err
	}
	desired := &entity.Category{
		Key:        in.Key,
		Name:       in.Name,
		ModifiedBy: in.ModifiedBy,
		RowVersion: in.RowVersion,
	}
	_, err = updateVersioned(ctx, uc.repo, desired, func(cur *entity.Category) bool {
		return cur.Name == desired.Name && eqPtr(cur.ModifiedBy, desired.ModifiedBy)
	})
	return err
}

// Delete elimina sin chequeo de versión (decisión heredada del diseño;
// ver DESIGN.md). ErrNotFound si la clave no existe.
func (uc *CategoryUseCase) Delete(ctx context.Context, key int64) error {
	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, key)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Key:              c.Key,
		Name:             c.Name,
		CreationDate:     c.CreatedAt,
		ModificationDate: c.ModifiedAt,
		CreatedBy:        c.CreatedBy,
		ModifiedBy:       c.ModifiedBy,
		RowVersion:       c.RowVersion,
	}
}
