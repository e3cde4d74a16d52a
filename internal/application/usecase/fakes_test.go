package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// Dobles en memoria de los puertos de persistencia. Reproducen el contrato
// del store real: claves generadas desde 1, RowVersion arranca en 0 y lo
// incrementa la escritura efectiva (como el trigger), compare-and-write
// atómico y copias defensivas en las lecturas.

type fakeCategoryRepo struct {
	seq    int64
	byKey  map[int64]*entity.Category
	writes int // escrituras efectivas vía UpdateIfVersionMatches
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byKey: make(map[int64]*entity.Category)}
}

func copyCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func (r *fakeCategoryRepo) Insert(_ context.Context, c *entity.Category) (*entity.Category, error) {
	for _, existing := range r.byKey {
		if existing.Name == c.Name {
			return nil, &domain.RuleViolation{Field: "name", Message: "Category name is already in use."}
		}
	}
	r.seq++
	stored := copyCategory(c)
	stored.Key = r.seq
	stored.CreatedAt = time.Now()
	stored.RowVersion = 0
	r.byKey[stored.Key] = stored
	return copyCategory(stored), nil
}

func (r *fakeCategoryRepo) GetByKey(_ context.Context, key int64) (*entity.Category, error) {
	c, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	return copyCategory(c), nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.byKey {
		if c.Name == name {
			return copyCategory(c), nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListAll(_ context.Context) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.byKey))
	for key := int64(1); key <= r.seq; key++ {
		if c, ok := r.byKey[key]; ok {
			list = append(list, copyCategory(c))
		}
	}
	return list, nil
}

func (r *fakeCategoryRepo) UpdateIfVersionMatches(_ context.Context, c *entity.Category) (*entity.Category, error) {
	stored, ok := r.byKey[c.Key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if stored.RowVersion != c.RowVersion {
		return nil, domain.ErrVersionConflict
	}
	now := time.Now()
	updated := copyCategory(c)
	updated.CreatedAt = stored.CreatedAt
	updated.CreatedBy = stored.CreatedBy
	updated.ModifiedAt = &now
	updated.RowVersion = stored.RowVersion + 1
	r.byKey[c.Key] = updated
	r.writes++
	return copyCategory(updated), nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, key int64) error {
	if _, ok := r.byKey[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

type fakeUserRepo struct {
	seq   int64
	byKey map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byKey: make(map[int64]*entity.User)}
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func (r *fakeUserRepo) Insert(_ context.Context, u *entity.User) (*entity.User, error) {
	r.seq++
	stored := copyUser(u)
	stored.Key = r.seq
	stored.CreatedAt = time.Now()
	stored.RowVersion = 0
	r.byKey[stored.Key] = stored
	return copyUser(stored), nil
}

func (r *fakeUserRepo) GetByKey(_ context.Context, key int64) (*entity.User, error) {
	u, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *fakeUserRepo) GetByIdentification(_ context.Context, identification string) (*entity.User, error) {
	for _, u := range r.byKey {
		if u.Identification == identification {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byKey {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(r.byKey))
	for key := int64(1); key <= r.seq; key++ {
		if u, ok := r.byKey[key]; ok {
			list = append(list, copyUser(u))
		}
	}
	return list, nil
}

func (r *fakeUserRepo) UpdateIfVersionMatches(_ context.Context, u *entity.User) (*entity.User, error) {
	stored, ok := r.byKey[u.Key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if stored.RowVersion != u.RowVersion {
		return nil, domain.ErrVersionConflict
	}
	now := time.Now()
	updated := copyUser(u)
	updated.CreatedAt = stored.CreatedAt
	updated.CreatedBy = stored.CreatedBy
	updated.ModifiedAt = &now
	updated.RowVersion = stored.RowVersion + 1
	r.byKey[u.Key] = updated
	return copyUser(updated), nil
}

func (r *fakeUserRepo) Delete(_ context.Context, key int64) error {
	if _, ok := r.byKey[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

type fakeSupplierRepo struct {
	seq        int64
	byKey      map[int64]*entity.Supplier
	referenced map[int64]bool // claves con productos asociados (FK RESTRICT)
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		byKey:      make(map[int64]*entity.Supplier),
		referenced: make(map[int64]bool),
	}
}

func copySupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	return &cp
}

func (r *fakeSupplierRepo) Insert(_ context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	r.seq++
	stored := copySupplier(s)
	stored.Key = r.seq
	stored.CreatedAt = time.Now()
	stored.RowVersion = 0
	r.byKey[stored.Key] = stored
	return copySupplier(stored), nil
}

func (r *fakeSupplierRepo) GetByKey(_ context.Context, key int64) (*entity.Supplier, error) {
	s, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	return copySupplier(s), nil
}

func (r *fakeSupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	for _, s := range r.byKey {
		if s.Name == name {
			return copySupplier(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) ListAll(_ context.Context) ([]*entity.Supplier, error) {
	list := make([]*entity.Supplier, 0, len(r.byKey))
	for key := int64(1); key <= r.seq; key++ {
		if s, ok := r.byKey[key]; ok {
			list = append(list, copySupplier(s))
		}
	}
	return list, nil
}

func (r *fakeSupplierRepo) UpdateIfVersionMatches(_ context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	stored, ok := r.byKey[s.Key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if stored.RowVersion != s.RowVersion {
		return nil, domain.ErrVersionConflict
	}
	now := time.Now()
	updated := copySupplier(s)
	updated.CreatedAt = stored.CreatedAt
	updated.CreatedBy = stored.CreatedBy
	updated.ModifiedAt = &now
	updated.RowVersion = stored.RowVersion + 1
	r.byKey[s.Key] = updated
	return copySupplier(updated), nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, key int64) error {
	if _, ok := r.byKey[key]; !ok {
		return domain.ErrNotFound
	}
	if r.referenced[key] {
		return domain.ErrReferenced
	}
	delete(r.byKey, key)
	return nil
}
