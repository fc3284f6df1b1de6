package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/dto"
)

// HeaderAPIKey header que deben presentar los clientes del API.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth gate que compara X-API-Key contra la clave configurada. Con la
// clave vacía el gate queda abierto (entornos de desarrollo).
func APIKeyAuth(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		got := c.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid API key"})
		}
		return c.Next()
	}
}
