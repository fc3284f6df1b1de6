package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
)

// CRUDHandler fábrica de los cinco handlers REST de un recurso simple más el
// middleware de precarga de :id. Una instancia por recurso; las closures
// parseCreate/applyUpdate aportan el mapeo DTO->entidad con campos permitidos
// explícitos, y toResponse la representación de salida.
type CRUDHandler[T entity.Resource] struct {
	uc          *usecase.CRUDUseCase[T]
	resource    string // clave de locals: preloaded_<resource>
	label       string // nombre visible en mensajes ("Category not found")
	parseCreate func(c *fiber.Ctx) (T, error)
	applyUpdate func(c *fiber.Ctx, item T) error
	toResponse  func(item T) any
}

// NewCRUDHandler construye el handler genérico de un recurso.
func NewCRUDHandler[T entity.Resource](
	uc *usecase.CRUDUseCase[T],
	resource, label string,
	parseCreate func(c *fiber.Ctx) (T, error),
	applyUpdate func(c *fiber.Ctx, item T) error,
	toResponse func(item T) any,
) *CRUDHandler[T] {
	return &CRUDHandler[T]{
		uc:          uc,
		resource:    resource,
		label:       label,
		parseCreate: parseCreate,
		applyUpdate: applyUpdate,
		toResponse:  toResponse,
	}
}

func (h *CRUDHandler[T]) localKey() string { return "preloaded_" + h.resource }

// preloaded devuelve la entidad resuelta por Preload para esta petición.
func (h *CRUDHandler[T]) preloaded(c *fiber.Ctx) T {
	item, _ := c.Locals(h.localKey()).(T)
	return item
}

// Preload middleware que resuelve :id antes de los handlers de verbo. Corta
// con 400/404 sin invocar el handler si el id es inválido o no existe.
func (h *CRUDHandler[T]) Preload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := h.uc.GetByID(c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Id is invalid"})
			case errors.Is(err, domain.ErrNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: h.label + " not found"})
			default:
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
			}
		}
		c.Locals(h.localKey(), item)
		return c.Next()
	}
}

// List responde 200 con todos los recursos, más recientes primero.
func (h *CRUDHandler[T]) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, h.toResponse(item))
	}
	return c.JSON(out)
}

// Create construye la entidad desde el body y la persiste. Duplicados
// responden 400 con "<valor> already exists".
func (h *CRUDHandler[T]) Create(c *fiber.Ctx) error {
	item, err := h.parseCreate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	created, err := h.uc.Create(item)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(h.toResponse(created))
}

// Read responde 200 con la entidad precargada.
func (h *CRUDHandler[T]) Read(c *fiber.Ctx) error {
	return c.JSON(h.toResponse(h.preloaded(c)))
}

// Update mezcla los campos permitidos del body sobre la entidad precargada y
// persiste.
func (h *CRUDHandler[T]) Update(c *fiber.Ctx) error {
	item := h.preloaded(c)
	if err := h.applyUpdate(c, item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	updated, err := h.uc.Update(item)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(h.toResponse(updated))
}

// Delete elimina la entidad precargada y responde con su último estado.
func (h *CRUDHandler[T]) Delete(c *fiber.Ctx) error {
	item := h.preloaded(c)
	if err := h.uc.Delete(item.GetID()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(h.toResponse(item))
}
