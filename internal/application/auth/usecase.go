package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// bcryptCost factor de costo del hash de password.
const bcryptCost = 10

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un vendedor: hashea el password con bcrypt (costo 10) y
// persiste. Devuelve ErrUserAlreadyRegistered si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.UserInput) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyRegistered
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:     in.Name,
		LastName: in.LastName,
		Email:    in.Email,
		Password: string(hash),
		Created:  time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Authenticate verifica email/password y emite un JWT con vigencia de 24h.
// Email inexistente y password incorrecto devuelven el mismo error para no
// filtrar cuál de los dos falló.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.AuthenticateInput) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.Name, user.LastName, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Created:  dto.FormatTime(u.Created),
	}
}
