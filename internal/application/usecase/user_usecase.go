package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El password se hashea con
// bcrypt al crear y nunca sale en las respuestas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create valida unicidad (identificación antes que email, en ese orden),
// hashea el password y persiste.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserCreateRequest) (*dto.UserResponse, error) {
	err := firstViolation(ctx, 0,
		uniqueCheck{
			field:   "identification",
			message: "Identification is already in use.",
			find: findKey(func(ctx context.Context) (*entity.User, error) {
				return uc.repo.GetByIdentification(ctx, in.Identification)
			}),
		},
		uniqueCheck{
			field:   "email",
			message: "Email is already in use.",
			find: findKey(func(ctx context.Context) (*entity.User, error) {
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
	created, err := uc.repo.Insert(ctx, &entity.User{
		Identification: in.Identification,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		PasswordHash:   string(hash),
		Role:           in.Role,
		CreatedBy:      in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(created), nil
}

// GetByKey obtiene un usuario por clave. Devuelve nil si no existe.
func (uc *UserUseCase) GetByKey(ctx context.Context, key int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByKey(ctx, key)
	if err != nil || u == nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByIdentification obtiene un usuario por identificación.
func (uc *UserUseCase) GetByIdentification(ctx context.Context, identification string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByIdentification(ctx, identification)
	if err != nil || u == nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByEmail obtiene un usuario por email.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ListAll lista todos los usuarios.
func (uc *UserUseCase) ListAll(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update aplica el protocolo versionado. Si el comando trae password y ya no
// coincide con el hash almacenado, cuenta como cambio y se rehashea.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UserUpdateRequest) error {
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
			message: "Identification is already in use by another user.",
			find: findKey(func(ctx context.Context) (*entity.User, error) {
				return uc.repo.GetByIdentification(ctx, in.Identification)
			}),
		},
		uniqueCheck{
			field:   "email",
			message: "Email is already in use by another user.",
			find: findKey(func(ctx context.Context) (*entity.User, error) {
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
	desired := &entity.User{
		Key:            in.Key,
		Identification: in.Identification,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		PasswordHash:   passwordHash,
		Role:           in.Role,
		ModifiedBy:     in.ModifiedBy,
		RowVersion:     in.RowVersion,
	}
	_, err = updateVersioned(ctx, uc.repo, desired, func(cur *entity.User) bool {
		return !passwordChanged &&
			cur.Identification == desired.Identification &&
			cur.Name == desired.Name &&
			cur.Email == desired.Email &&
			cur.Phone == desired.Phone &&
			cur.Address == desired.Address &&
			cur.Role == desired.Role &&
			eqPtr(cur.ModifiedBy, desired.ModifiedBy)
	})
	return err
}

// Delete elimina un usuario. Las referencias CreatedBy/ModifiedBy de otros
// registros quedan en NULL (SET NULL en el store).
func (uc *UserUseCase) Delete(ctx context.Context, key int64) error {
	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, key)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Key:              u.Key,
		Identification:   u.Identification,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Address:          u.Address,
		Role:             u.Role,
		CreationDate:     u.CreatedAt,
		ModificationDate: u.ModifiedAt,
		CreatedBy:        u.CreatedBy,
		ModifiedBy:       u.ModifiedBy,
		RowVersion:       u.RowVersion,
	}
}
