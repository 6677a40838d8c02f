package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrMissingField       = errors.New("campo requerido ausente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDuplicate          = errors.New("recurso duplicado")
)

// ValidationError describe un campo inválido. Envuelve ErrInvalidInput o ErrMissingField
// para que errors.Is siga funcionando en los handlers.
type ValidationError struct {
	Field  string
	Reason string
	kind   error
}

// NewValidationError construye un error de validación de tipo ErrInvalidInput.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, kind: ErrInvalidInput}
}

// NewMissingFieldError construye un error de validación de tipo ErrMissingField.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "es requerido", kind: ErrMissingField}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}
