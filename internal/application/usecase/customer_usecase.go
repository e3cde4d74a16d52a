package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. Misma forma que
// UserUseCase pero sin rol.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida unicidad (identificación antes que email), hashea el password
// y persiste. Lo usa también el registro de clientes de customer-auth.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerCreateRequest) (*dto.CustomerResponse, error) {
	err := firstViolation(ctx, 0,
		uniqueCheck{
			field:   "identification",
			message: "Identification is already in use.",
			find: findKey(func(ctx context.Context) (*entity.Customer, error) {
				return uc.repo.GetByIdentification(ctx, in.Identification)
			}),
		},
		uniqueCheck{
			field:   "email",
			message: "Email is already in use.",
			find: findKey(func(ctx context.Context) (*entity.Customer, error) {
				return uc.repo.GetByEmail(ctx, in.Email)
			}),
		},
	)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Insert(ctx, &entity.Customer{
		Identification: in.Identification,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		PasswordHash:   string(hash),
		CreatedBy:      in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(created), nil
}

// GetByKey obtiene un cliente por clave. Devuelve nil si no existe.
func (uc *CustomerUseCase) GetByKey(ctx context.Context, key int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByKey(ctx, key)
	if err != nil || c == nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByIdentification obtiene un cliente por identificación.
func (uc *CustomerUseCase) GetByIdentification(ctx context.Context, identification string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByIdentification(ctx, identification)
	if err != nil || c == nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByEmail obtiene un cliente por email.
func (uc *CustomerUseCase) GetByEmail(ctx context.Context, email string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByEmail(ctx, email)
	if err != nil || c == nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// ListAll lista todos los clientes.
func (uc *CustomerUseCase) ListAll(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return items, nil
}

// Update aplica el protocolo versionado con el mismo manejo de password
// opcional que UserUseCase.Update.
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.CustomerUpdateRequest) error {
	existing, err := uc.repo.GetByKey(ctx, in.Key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	err = firstViolation(ctx, in.Key,
		uniqueCheck{
			field:   "identification",
			message: "Identification is already in use by another customer.",
			find: findKey(func(ctx context.Context) (*entity.Customer, error) {
				return uc.repo.GetByIdentification(ctx, in.Identification)
			}),
		},
		uniqueCheck{
			field:   "email",
			message: "Email is already in use by another customer.",
			find: findKey(func(ctx context.Context) (*entity.Customer, error) {
				return uc.repo.GetByEmail(ctx, in.Email)
			}),
		},
	)
	if err != nil {
		return err
	}
	passwordHash := existing.PasswordHash
	passwordChanged := false
	if in.Password != "" {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(in.Password)) != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			passwordHash = string(hash)
			passwordChanged = true
		}
	}
	desired := &entity.Customer{
		Key:            in.Key,
		Identification: in.Identification,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		PasswordHash:   passwordHash,
		ModifiedBy:     in.ModifiedBy,
		RowVersion:     in.RowVersion,
	}
	_, err = updateVersioned(ctx, uc.repo, desired, func(cur *entity.Customer) bool {
		return !passwordChanged &&
			cur.Identification == desired.Identification &&
			cur.Name == desired.Name &&
			cur.Email == desired.Email &&
			cur.Phone == desired.Phone &&
			cur.Address == desired.Address &&
			eqPtr(cur.ModifiedBy, desired.ModifiedBy)
	})
	return err
}

// Delete elimina un cliente por clave.
func (uc *CustomerUseCase) Delete(ctx context.Context, key int64) error {
	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, key)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Key:              c.Key,
		Identification:   c.Identification,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		CreationDate:     c.CreatedAt,
		ModificationDate: c.ModifiedAt,
		CreatedBy:        c.CreatedBy,
		ModifiedBy:       c.ModifiedBy,
		RowVersion:       c.RowVersion,
	}
}
