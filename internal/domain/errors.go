package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los usecases los retornan
// tal cual y la capa HTTP los traduce en un único punto (respondError).
var (
	ErrNotFound              = errors.New("resource not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrRoleNotFound          = errors.New("role not found")
	ErrDebtNotFound          = errors.New("debt not found")
	ErrUsernameAlreadyExists = errors.New("Username already exists")
	ErrEmailAlreadyExists    = errors.New("Email already exists")
	ErrInvalidRole           = errors.New("Invalid role")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicate             = errors.New("duplicate resource")
	ErrReferenced            = errors.New("resource has related records")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
)

// ValidationError agrupa fallos de validación campo → mensaje. La capa HTTP
// lo serializa como mapa en el cuerpo 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// NewValidationError construye el error con el mapa de campos.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
