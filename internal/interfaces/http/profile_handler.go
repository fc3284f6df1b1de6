package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	"github.com/jcamargo/tienda-api/internal/domain"
)

// ProfileHandler perfil del usuario con sesión activa.
type ProfileHandler struct {
	uc       *usecase.ProfileUseCase
	sessions *Sessions
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *usecase.ProfileUseCase, sessions *Sessions) *ProfileHandler {
	return &ProfileHandler{uc: uc, sessions: sessions}
}

// Update mezcla los campos permitidos sobre el usuario de la sesión,
// recalcula displayName, persiste y re-establece la sesión.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	user, err := h.uc.Update(SessionUser(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotSignedIn) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "User is not signed in"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if err := h.sessions.Refresh(c, user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Get responde el perfil del usuario de la sesión.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user := SessionUser(c)
	if user == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "User is not signed in"})
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Me responde el usuario de la sesión o null; nunca es un error.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user := SessionUser(c)
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(dto.NewUserResponse(user))
}
