package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
	"github.com/jhoicas/agencyhub-api/pkg/jwt"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegisterTxRunner ejecuta el tramo transaccional del alta de agencia:
// creación de la agencia y de su owner, todo o nada.
type RegisterTxRunner interface {
	RunOwnerRegistration(ctx context.Context, fn func(
		users repository.UserRepository,
		agencies repository.AgencyRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: alta de agencia (owner) y login.
// Los usuarios de equipo NO se crean aquí: llegan por invitación.
type AuthUseCase struct {
	tx       RegisterTxRunner
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(tx RegisterTxRunner, userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{tx: tx, userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterOwner crea la agencia y su usuario AGENCY_OWNER en una sola transacción
// (el flujo de alta de agencia; es el único camino que produce roles administrativos).
// Si el alta del owner falla, la agencia no queda huérfana.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado, incluido el
// caso de dos registros concurrentes (el índice único de email corta al segundo).
func (uc *AuthUseCase) RegisterOwner(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("verificar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	agency := &entity.Agency{
		ID:           uuid.New().String(),
		Name:         in.AgencyName,
		CompanyEmail: in.Email,
		Goal:         decimal.NewFromInt(5), // meta inicial por defecto
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	owner := &entity.User{
		ID:           uuid.New().String(),
		AgencyID:     agency.ID,
		Email:        in.Email,
		Name:         in.Name,
		Role:         entity.RoleAgencyOwner,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunOwnerRegistration(context.Background(), func(
		users repository.UserRepository,
		agencies repository.AgencyRepository,
	) error {
		if err := agencies.Create(agency); err != nil {
			return fmt.Errorf("crear agencia: %w", err)
		}
		return users.Create(owner)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(owner), nil
}

// Login verifica email/password, genera JWT de sesión y retorna token + usuario.
// Usuarios sin password local (provisionados por invitación, sesión vía proveedor
// de identidad) reciben domain.ErrUnauthorized por este camino.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.TokenInput{
		UserID:    user.ID,
		AgencyID:  user.AgencyID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		AgencyID:  u.AgencyID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
