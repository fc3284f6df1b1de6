package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/auth"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/domain"
)

// AuthHandler maneja signup, signin y signout locales.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *Sessions
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessions *Sessions) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

// Signup registra una cuenta local, abre sesión y responde el usuario
// saneado. El DTO no admite roles, así que el cliente no puede escalar
// privilegios por mass-assignment.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Please fill in all required fields"})
	}
	user, err := h.uc.Signup(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if err := h.sessions.Establish(c, user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Signin verifica credenciales locales y abre sesión.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.SigninRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	user, err := h.uc.Signin(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Unknown user or invalid password"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if err := h.sessions.Establish(c, user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Signout termina la sesión y redirige a la raíz de la aplicación.
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	h.sessions.Destroy(c)
	return c.Redirect("/")
}
