package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
	"github.com/tu-usuario/pedidos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: login de usuarios, login y
// registro de clientes. Los tokens de usuario llevan rol; los de cliente no.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	customerUC   *usecase.CustomerUseCase
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, customerRepo repository.CustomerRepository, customerUC *usecase.CustomerUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		customerUC:   customerUC,
		jwtCfg:       jwtCfg,
	}
}

// LoginUser verifica email/password de un usuario y genera su JWT.
// Devuelve ErrUnauthorized sin distinguir usuario inexistente de password
// incorrecto.
func (uc *AuthUseCase) LoginUser(ctx context.Context, in dto.UserLoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.Key, user.Email, user.Name, user.Role, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// LoginCustomer verifica email/password de un cliente y genera su JWT sin
// claim de rol.
func (uc *AuthUseCase) LoginCustomer(ctx context.Context, in dto.CustomerLoginRequest) (*dto.TokenResponse, error) {
	customer, err := uc.customerRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil || bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, customer.Key, customer.Email, customer.Name, "", uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// RegisterCustomer crea el cliente (reglas de unicidad incluidas) y emite su
// token en la misma operación.
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, in dto.CustomerCreateRequest) (*dto.CustomerResponse, *dto.TokenResponse, error) {
	created, err := uc.customerUC.Create(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, created.Key, created.Email, created.Name, "", uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, nil, err
	}
	return created, &dto.TokenResponse{Token: token}, nil
}
