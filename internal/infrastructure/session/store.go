// Package session implementa el almacén de sesiones del lado servidor.
// Cada sesión guarda el snapshot saneado del usuario bajo una clave con TTL;
// el cliente solo conoce el sid de la cookie.
package session

import (
	"context"

	"github.com/jcamargo/tienda-api/internal/domain/entity"
)

// Store puerto del almacén de sesiones.
type Store interface {
	// Create abre una sesión nueva para el usuario y devuelve el sid.
	Create(ctx context.Context, user *entity.User) (string, error)
	// Get devuelve el usuario de la sesión o domain.ErrSessionNotFound.
	Get(ctx context.Context, sid string) (*entity.User, error)
	// Refresh reescribe el snapshot del usuario bajo el mismo sid (el
	// equivalente a re-establecer la sesión tras mutar el perfil).
	Refresh(ctx context.Context, sid string, user *entity.User) error
	// Destroy termina la sesión. Destruir una sesión inexistente no es error.
	Destroy(ctx context.Context, sid string) error
}
