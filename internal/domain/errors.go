package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrGateway      = errors.New("fallo del gateway remoto")
	ErrOutOfStock   = errors.New("sin stock")
)

// AuthError credenciales inválidas o cuenta duplicada. errors.Is(err, ErrUnauthorized) es true.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Is permite comparar contra ErrUnauthorized.
func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// NewAuthError construye un AuthError.
func NewAuthError(msg string) error { return &AuthError{Message: msg} }

// ValidationError restricción de formulario violada antes de cualquier llamada de red.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// GatewayError fallo de una operación de tabla; Message es el texto del backend sin modificar.
type GatewayError struct {
	Op      string // select, insert, update, delete
	Table   string
	Message string
	Err     error
}

func (e *GatewayError) Error() string { return e.Message }

// Unwrap expone la causa original (p. ej. ErrNotFound cuando Update no encuentra la fila).
func (e *GatewayError) Unwrap() error { return e.Err }

// Is permite comparar contra ErrGateway.
func (e *GatewayError) Is(target error) bool { return target == ErrGateway }

// NewGatewayError envuelve err como GatewayError conservando su mensaje.
func NewGatewayError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return err
	}
	return &GatewayError{Op: op, Table: table, Message: err.Error(), Err: err}
}

// Describe devuelve "op table: message" para logs.
func (e *GatewayError) Describe() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Table, e.Message)
}
