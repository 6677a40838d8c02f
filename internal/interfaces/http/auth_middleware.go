package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/access"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

// Locals keys para el usuario autenticado y su token.
const (
	LocalUser  = "user"
	LocalToken = "token"
)

// SessionResolver resuelve un token al usuario de su sesión. Lo implementa *auth.AuthUseCase.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware exige un Bearer Token con sesión vigente y carga el usuario en c.Locals.
// Solo domain.ErrUnauthorized responde 401; una falla del registro de sesiones sale como 500.
func AuthMiddleware(resolver SessionResolver, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		token, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		user, err := resolver.Resolve(c.UserContext(), token)
		if err != nil && !errors.Is(err, domain.ErrUnauthorized) {
			return respondError(c, log, err)
		}
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// RequireAction autoriza según la política de acceso. Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 si no hay usuario en el contexto.
//   - 403 si el rol no tiene permiso para action.
func RequireAction(action access.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !access.Can(user.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + string(user.Role) + "' no tiene permiso para " + string(action),
			})
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return token, nil
}

// GetUser devuelve el usuario autenticado (nil si la ruta no pasó por AuthMiddleware).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetToken devuelve el token de la petición autenticada.
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}
