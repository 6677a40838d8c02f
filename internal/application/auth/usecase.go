package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/access"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

// Config parámetros de emisión de sesiones.
type Config struct {
	SessionTTL time.Duration
	Now        func() time.Time // nil = time.Now
}

// AuthUseCase casos de uso de autenticación: login, resolución de sesión y logout.
// Las credenciales se comparan en texto plano contra el directorio (placeholder sin hashing).
type AuthUseCase struct {
	directory repository.UserDirectory
	sessions  repository.SessionRegistry
	encoder   TokenEncoder
	cfg       Config
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	directory repository.UserDirectory,
	sessions repository.SessionRegistry,
	encoder TokenEncoder,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		directory: directory,
		sessions:  sessions,
		encoder:   encoder,
		cfg:       cfg,
		log:       log.Component("auth"),
	}
}

// Login verifica email/password, emite el token y registra la sesión.
//
// Retorna:
//   - domain.ErrMissingField        si falta email o password (antes de consultar el directorio).
//   - domain.ErrInvalidCredentials  si no hay coincidencia exacta; no distingue email de password.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" {
		return nil, domain.NewMissingFieldError("email")
	}
	if in.Password == "" {
		return nil, domain.NewMissingFieldError("password")
	}

	entry, err := uc.directory.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if entry == nil || subtle.ConstantTimeCompare([]byte(entry.Password), []byte(in.Password)) != 1 {
		uc.log.Warn().Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	if !entry.Role.Valid() {
		uc.log.Error().Str("user_id", entry.ID).Str("role", string(entry.Role)).Msg("usuario con rol inválido en el directorio")
		return nil, domain.ErrInvalidCredentials
	}

	user := entry.User
	token, err := uc.encoder.Encode(user, uc.cfg.Now())
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	if err := uc.sessions.Put(ctx, token, user, uc.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("auth: registrar sesión: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login exitoso")
	return &dto.LoginResponse{User: toUserResponse(user), Token: token}, nil
}

// Resolve devuelve el usuario ligado a token. domain.ErrUnauthorized si el token
// no es válido, expiró o fue cerrado.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	if v, ok := uc.encoder.(TokenVerifier); ok {
		if _, err := v.Verify(token); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}
	user, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("auth: consultar sesión: %w", err)
	}
	if user == nil || !user.Role.Valid() {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Logout elimina el registro de la sesión. Idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("auth: cerrar sesión: %w", err)
	}
	return nil
}

// Me arma la respuesta de identidad + permisos para user.
func (uc *AuthUseCase) Me(user entity.User) *dto.MeResponse {
	actions := access.PermittedActions(user.Role)
	perms := make([]string, 0, len(actions))
	for _, a := range actions {
		perms = append(perms, string(a))
	}
	return &dto.MeResponse{User: toUserResponse(user), Permissions: perms}
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
		Name:  u.Name,
	}
}
