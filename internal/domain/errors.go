package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidID             = errors.New("id inválido")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidCredentials    = errors.New("usuario desconocido o contraseña inválida")
	ErrNotSignedIn           = errors.New("usuario sin sesión activa")
	ErrProviderAlreadyLinked = errors.New("el usuario ya está conectado con este proveedor")
	ErrProviderNotLinked     = errors.New("el usuario no tiene este proveedor vinculado")
	ErrSessionNotFound       = errors.New("sesión no encontrada")
)

// DuplicateError violación de unicidad sobre el campo visible del recurso.
// El mensaje es el que se expone al cliente: "<valor> already exists".
type DuplicateError struct {
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Value)
}

// Unwrap permite errors.Is(err, ErrDuplicate).
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}
