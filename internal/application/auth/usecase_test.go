package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/pedidos-api/pkg/jwt"
)

var testJWT = JWTConfig{Secret: "test-secret-key", ExpHours: 4, Issuer: "pedidos-api-test"}

type memUserRepo struct {
	seq   int64
	byKey map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byKey: make(map[int64]*entity.User)} }

func (r *memUserRepo) Insert(_ context.Context, u *entity.User) (*entity.User, error) {
	r.seq++
	cp := *u
	cp.Key = r.seq
	cp.CreatedAt = time.Now()
	r.byKey[cp.Key] = &cp
	out := cp
	return &out, nil
}

func (r *memUserRepo) GetByKey(_ context.Context, key int64) (*entity.User, error) {
	u, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByIdentification(_ context.Context, identification string) (*entity.User, error) {
	for _, u := range r.byKey {
		if u.Identification == identification {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byKey {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListAll(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) UpdateIfVersionMatches(_ context.Context, u *entity.User) (*entity.User, error) {
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Delete(_ context.Context, key int64) error { return domain.ErrNotFound }

type memCustomerRepo struct {
	seq   int64
	byKey map[int64]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byKey: make(map[int64]*entity.Customer)}
}

func (r *memCustomerRepo) Insert(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	r.seq++
	cp := *c
	cp.Key = r.seq
	cp.CreatedAt = time.Now()
	r.byKey[cp.Key] = &cp
	out := cp
	return &out, nil
}

func (r *memCustomerRepo) GetByKey(_ context.Context, key int64) (*entity.Customer, error) {
	c, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetByIdentification(_ context.Context, identification string) (*entity.Customer, error) {
	for _, c := range r.byKey {
		if c.Identification == identification {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.byKey {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) ListAll(_ context.Context) ([]*entity.Customer, error) { return nil, nil }

func (r *memCustomerRepo) UpdateIfVersionMatches(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return nil, domain.ErrNotFound
}

func (r *memCustomerRepo) Delete(_ context.Context, key int64) error { return domain.ErrNotFound }

func buildAuthUseCase() (*AuthUseCase, *memUserRepo, *memCustomerRepo) {
	userRepo := newMemUserRepo()
	customerRepo := newMemCustomerRepo()
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	return NewAuthUseCase(userRepo, customerRepo, customerUC, testJWT), userRepo, customerRepo
}

func seedUser(t *testing.T, repo *memUserRepo, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u, err := repo.Insert(context.Background(), &entity.User{
		Identification: "109876543",
		Name:           "Ana Gómez",
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
	})
	require.NoError(t, err)
	return u
}

func TestLoginUser_CredencialesCorrectas(t *testing.T) {
	uc, userRepo, _ := buildAuthUseCase()
	seeded := seedUser(t, userRepo, "ana@example.com", "secreta123", "admin")

	out, err := uc.LoginUser(context.Background(), dto.UserLoginRequest{
		Email: "ana@example.com", Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	key, err := claims.SubjectKey()
	require.NoError(t, err)
	assert.Equal(t, seeded.Key, key)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginUser_PasswordIncorrecto(t *testing.T) {
	uc, userRepo, _ := buildAuthUseCase()
	seedUser(t, userRepo, "ana@example.com", "secreta123", "admin")

	_, err := uc.LoginUser(context.Background(), dto.UserLoginRequest{
		Email: "ana@example.com", Password: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUser_EmailInexistente(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.LoginUser(context.Background(), dto.UserLoginRequest{
		Email: "nadie@example.com", Password: "loquesea",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"inexistente y password malo deben ser indistinguibles")
}

func TestRegisterCustomer_CreaYEmiteToken(t *testing.T) {
	uc, _, customerRepo := buildAuthUseCase()

	created, token, err := uc.RegisterCustomer(context.Background(), dto.CustomerCreateRequest{
		Identification: "209876543",
		Name:           "Carlos Ruiz",
		Email:          "carlos@example.com",
		Phone:          "3009876543",
		Address:        "Carrera 5 #1-10",
		Password:       "clave12345",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	claims, err := pkgjwt.Parse(testJWT.Secret, token.Token)
	require.NoError(t, err)
	key, err := claims.SubjectKey()
	require.NoError(t, err)
	assert.Equal(t, created.Key, key)
	assert.Empty(t, claims.Role, "los tokens de cliente no llevan rol")

	stored, err := customerRepo.GetByKey(context.Background(), created.Key)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave12345")))
}

func TestRegisterCustomer_IdentificacionDuplicada(t *testing.T) {
	uc, _, _ := buildAuthUseCase()
	in := dto.CustomerCreateRequest{
		Identification: "209876543",
		Name:           "Carlos Ruiz",
		Email:          "carlos@example.com",
		Phone:          "3009876543",
		Address:        "Carrera 5 #1-10",
		Password:       "clave12345",
	}
	_, _, err := uc.RegisterCustomer(context.Background(), in)
	require.NoError(t, err)

	in.Email = "otro@example.com"
	_, _, err = uc.RegisterCustomer(context.Background(), in)
	rv, ok := domain.AsRuleViolation(err)
	require.True(t, ok)
	assert.Equal(t, "Identification is already in use.", rv.Message)
}

func TestLoginCustomer_CredencialesCorrectas(t *testing.T) {
	uc, _, _ := buildAuthUseCase()
	_, _, err := uc.RegisterCustomer(context.Background(), dto.CustomerCreateRequest{
		Identification: "209876543",
		Name:           "Carlos Ruiz",
		Email:          "carlos@example.com",
		Phone:          "3009876543",
		Address:        "Carrera 5 #1-10",
		Password:       "clave12345",
	})
	require.NoError(t, err)

	out, err := uc.LoginCustomer(context.Background(), dto.CustomerLoginRequest{
		Email: "carlos@example.com", Password: "clave12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}
