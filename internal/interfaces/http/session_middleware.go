package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/infrastructure/session"
)

// Locals keys para el usuario y el sid de la sesión en Fiber.
const (
	LocalSessionUser = "session_user"
	LocalSessionID   = "session_id"
)

// Sessions une la cookie de sesión con el almacén: establecer, renovar y
// destruir la sesión de una petición.
type Sessions struct {
	store  session.Store
	cookie string
	ttl    time.Duration
}

// NewSessions construye el gestor de sesiones.
func NewSessions(store session.Store, cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{store: store, cookie: cookieName, ttl: ttl}
}

// Load middleware que resuelve la cookie de sesión y carga el usuario en
// c.Locals. Nunca corta la petición: sin sesión válida simplemente no hay
// usuario (los gates deciden después).
func (s *Sessions) Load() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(s.cookie)
		if sid == "" {
			return c.Next()
		}
		user, err := s.store.Get(c.UserContext(), sid)
		if err != nil {
			return c.Next()
		}
		c.Locals(LocalSessionUser, user)
		c.Locals(LocalSessionID, sid)
		return c.Next()
	}
}

// Establish abre una sesión nueva para el usuario y deja la cookie.
func (s *Sessions) Establish(c *fiber.Ctx, user *entity.User) error {
	sid, err := s.store.Create(c.UserContext(), user)
	if err != nil {
		return err
	}
	c.Locals(LocalSessionUser, user)
	c.Locals(LocalSessionID, sid)
	c.Cookie(&fiber.Cookie{
		Name:     s.cookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}

// Refresh reescribe el snapshot del usuario bajo el sid vigente (re-login
// tras mutar el perfil). Sin sesión previa, abre una nueva.
func (s *Sessions) Refresh(c *fiber.Ctx, user *entity.User) error {
	sid := SessionID(c)
	if sid == "" {
		return s.Establish(c, user)
	}
	c.Locals(LocalSessionUser, user)
	return s.store.Refresh(c.UserContext(), sid, user)
}

// Destroy termina la sesión y expira la cookie.
func (s *Sessions) Destroy(c *fiber.Ctx) {
	if sid := c.Cookies(s.cookie); sid != "" {
		_ = s.store.Destroy(c.UserContext(), sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.cookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Locals(LocalSessionUser, nil)
	c.Locals(LocalSessionID, nil)
}

// RequiresLogin gate que exige una sesión activa.
func RequiresLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "User is not logged in"})
		}
		return c.Next()
	}
}

// SessionUser devuelve el usuario de la sesión o nil.
func SessionUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalSessionUser).(*entity.User)
	return u
}

// SessionID devuelve el sid de la sesión o "".
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(LocalSessionID).(string)
	return sid
}
