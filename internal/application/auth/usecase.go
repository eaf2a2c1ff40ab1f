package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
	"github.com/kraya/platform-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login: verifica credenciales contra el hash
// almacenado, sella lastLogin y emite el token.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto responden igual para no filtrar
// qué usernames existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	if err := uc.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.RoleNames(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.UserToResponse(user),
	}, nil
}
