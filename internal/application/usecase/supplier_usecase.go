package usecase

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create valida unicidad del nombre y persiste.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierCreateRequest) (*dto.SupplierResponse, error) {
	err := firstViolation(ctx, 0, uniqueCheck{
		field:   "name",
		message: "Supplier name is already in use.",
		find: findKey(func(ctx context.Context) (*entity.Supplier, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Insert(ctx, &entity.Supplier{Name: in.Name, CreatedBy: in.CreatedBy})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(created), nil
}

// GetByKey obtiene un proveedor por clave. Devuelve nil si no existe.
func (uc *SupplierUseCase) GetByKey(ctx context.Context, key int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByKey(ctx, key)
	if err != nil || s == nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByName obtiene un proveedor por nombre. Devuelve nil si no existe.
func (uc *SupplierUseCase) GetByName(ctx context.Context, name string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByName(ctx, name)
	if err != nil || s == nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// ListAll lista todos los proveedores.
func (uc *SupplierUseCase) ListAll(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update aplica el protocolo versionado sobre proveedores.
func (uc *SupplierUseCase) Update(ctx context.Context, in dto.SupplierUpdateRequest) error {
	existing, err := uc.repo.GetByKey(ctx, in.Key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	err = firstViolation(ctx, in.Key, uniqueCheck{
		field:   "name",
		message: "Supplier name is already in use by another supplier.",
		find: findKey(func(ctx context.Context) (*entity.Supplier, error) {
			return uc.repo.GetByName(ctx, in.Name)
		}),
	})
	if err != nil {
		return err
	}
	desired := &entity.Supplier{
		Key:        in.Key,
		Name:       in.Name,
		ModifiedBy: in.ModifiedBy,
		RowVersion: in.RowVersion,
	}
	_, err = updateVersioned(ctx, uc.repo, desired, func(cur *entity.Supplier) bool {
		return cur.Name == desired.Name && eqPtr(cur.ModifiedBy, desired.ModifiedBy)
	})
	return err
}

// Delete elimina un proveedor. El borrado con productos vivos lo bloquea la
// FK RESTRICT del store y llega como domain.ErrReferenced.
func (uc *SupplierUseCase) Delete(ctx context.Context, key int64) error {
	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, key)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		Key:              s.Key,
		Name:             s.Name,
		CreationDate:     s.CreatedAt,
		ModificationDate: s.ModifiedAt,
		CreatedBy:        s.CreatedBy,
		ModifiedBy:       s.ModifiedBy,
		RowVersion:       s.RowVersion,
	}
}
