package usecase

import (
	"bytes"
	"context"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida unicidad del nombre y persiste. SuppliedBy y CategorizedBy
// deben existir; si no, la FK del store lo rechaza.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductCreateRequest) (*dto.ProductResponse, error) {
	err := firstViolation(ctx, 0, uniqueCheck{
		field:   "name",
		message: "Product name is already in use.",
		find: findKey(func(ctx context.Context) (*entity.Product, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Insert(ctx, &entity.Product{
		Image:             in.Image,
		Name:              in.Name,
		Detail:            in.Detail,
		Price:             in.Price,
		AvailableQuantity: in.AvailableQuantity,
		SuppliedBy:        in.SuppliedBy,
		CategorizedBy:     in.CategorizedBy,
		CreatedBy:         in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByKey obtiene un producto por clave. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByKey(ctx context.Context, key int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByKey(ctx, key)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByName obtiene un producto por nombre. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByName(ctx context.Context, name string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByName(ctx, name)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListAll lista todos los productos.
func (uc *ProductUseCase) ListAll(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica el protocolo versionado. La detección de cambios cubre todos
// los campos mutables del comando; Image se compara byte a byte y Price con
// Equal para ignorar diferencias de exponente decimal.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.ProductUpdateRequest) error {
	existing, err := uc.repo.GetByKey(ctx, in.Key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	err = firstViolation(ctx, in.Key, uniqueCheck{
		field:   "name",
		message: "Product name is already in use by another product.",
		find: findKey(func(ctx context.Context) (*entity.Product, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return err
	}
	desired := &entity.Product{
		Key:               in.Key,
		Image:             in.Image,
		Name:              in.Name,
		Detail:            in.Detail,
		Price:             in.Price,
		AvailableQuantity: in.AvailableQuantity,
		SuppliedBy:        in.SuppliedBy,
		CategorizedBy:     in.CategorizedBy,
		ModifiedBy:        in.ModifiedBy,
		RowVersion:        in.RowVersion,
	}
	_, err = updateVersioned(ctx, uc.repo, desired, func(cur *entity.Product) bool {
		return cur.Name == desired.Name &&
			cur.Detail == desired.Detail &&
			cur.Price.Equal(desired.Price) &&
			cur.AvailableQuantity == desired.AvailableQuantity &&
			bytes.Equal(cur.Image, desired.Image) &&
			cur.SuppliedBy == desired.SuppliedBy &&
			cur.CategorizedBy == desired.CategorizedBy &&
			eqPtr(cur.ModifiedBy, desired.ModifiedBy)
	})
	return err
}

// Delete elimina un producto por clave.
func (uc *ProductUseCase) Delete(ctx context.Context, key int64) error {
	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, key)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Key:               p.Key,
		Image:             p.Image,
		Name:              p.Name,
		Detail:            p.Detail,
		Price:             p.Price,
		AvailableQuantity: p.AvailableQuantity,
		SuppliedBy:        p.SuppliedBy,
		CategorizedBy:     p.CategorizedBy,
		CreationDate:      p.CreatedAt,
		ModificationDate:  p.ModifiedAt,
		CreatedBy:         p.CreatedBy,
		ModifiedBy:        p.ModifiedBy,
		RowVersion:        p.RowVersion,
	}
}
