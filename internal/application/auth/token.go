package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/pkg/jwt"
)

// TokenEncoder genera el token de una sesión nueva.
type TokenEncoder interface {
	Encode(user entity.User, issuedAt time.Time) (string, error)
}

// TokenVerifier lo implementan los encoders cuyos tokens son autoverificables (firma).
type TokenVerifier interface {
	Verify(token string) (*entity.User, error)
}

// OpaqueTokenEncoder token = base64("<userID>:<unixNano>"). Sin firma: solo es válido
// mientras exista su registro en el SessionRegistry.
type OpaqueTokenEncoder struct{}

// Encode implementa TokenEncoder.
func (OpaqueTokenEncoder) Encode(user entity.User, issuedAt time.Time) (string, error) {
	raw := user.ID + ":" + strconv.FormatInt(issuedAt.UnixNano(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// JWTTokenEncoder token firmado HS256 con los datos del usuario.
type JWTTokenEncoder struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Encode implementa TokenEncoder.
func (e JWTTokenEncoder) Encode(user entity.User, issuedAt time.Time) (string, error) {
	return jwt.Generate(e.Secret, e.Issuer, jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	}, issuedAt, e.TTL)
}

// Verify implementa TokenVerifier.
func (e JWTTokenEncoder) Verify(token string) (*entity.User, error) {
	s, err := jwt.Parse(e.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("verificar token: %w", err)
	}
	return &entity.User{ID: s.UserID, Email: s.Email, Name: s.Name, Role: entity.Role(s.Role)}, nil
}
