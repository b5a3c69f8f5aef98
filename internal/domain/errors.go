package domain

import "errors"

// Errores de dominio del catálogo. Los adaptadores los envuelven con %w;
// la capa HTTP los traduce a status con errors.Is.
var (
	// ErrNotFound empresa, producto, registro de inventario o usuario inexistente.
	ErrNotFound = errors.New("no existe")
	// ErrUserNotFound login con un email sin cuenta.
	ErrUserNotFound       = errors.New("no hay cuenta con ese email")
	ErrEmailAlreadyExists = errors.New("email en uso por otra cuenta")
	ErrInvalidInput       = errors.New("datos inválidos")
	// ErrDuplicate NIT o código de producto repetido.
	ErrDuplicate    = errors.New("clave ya registrada")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("cuenta sin permiso")
	// ErrConflict borrar algo que otros registros todavía referencian.
	ErrConflict = errors.New("referenciado por otros registros")
)
