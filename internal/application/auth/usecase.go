package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/cafe-pos-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase maneja autenticación y gestión de usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login valida credenciales contra username O email y emite un JWT.
func (uc *UseCase) Login(login, password string) (string, *entity.User, error) {
	user, err := uc.userRepo.GetByLogin(strings.TrimSpace(login))
	if err != nil {
		return "", nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("comparar contraseña: %w", err)
	}

	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, fmt.Errorf("emitir token: %w", err)
	}
	return token, user, nil
}

// CreateUser da de alta un usuario con la contraseña hasheada (bcrypt).
func (uc *UseCase) CreateUser(u *entity.User, plainPassword string) error {
	switch u.Role {
	case entity.RoleAdministrador, entity.RoleGerencia, entity.RoleOperativo:
	default:
		return fmt.Errorf("rol %q: %w", u.Role, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(u.Username) == "" || strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("username y email requeridos: %w", domain.ErrInvalidInput)
	}
	if len(plainPassword) < 6 {
		return fmt.Errorf("contraseña demasiado corta: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	u.Password = string(hash)
	return uc.userRepo.Create(u)
}

// ListUsers devuelve los usuarios no borrados.
func (uc *UseCase) ListUsers() ([]*entity.User, error) {
	return uc.userRepo.List()
}

// DeleteUser borra lógicamente un usuario.
func (uc *UseCase) DeleteUser(id int64) error {
	return uc.userRepo.SoftDelete(id)
}
