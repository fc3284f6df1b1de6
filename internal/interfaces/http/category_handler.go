package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
)

// NewCategoryHandler instancia el CRUD genérico para Category con name como
// campo visible.
func NewCategoryHandler(uc *usecase.CRUDUseCase[*entity.Category]) *CRUDHandler[*entity.Category] {
	return NewCRUDHandler(uc, "category", "Category",
		func(c *fiber.Ctx) (*entity.Category, error) {
			var in dto.CreateCategoryRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, errors.New("Invalid request body")
			}
			if in.Name == "" {
				return nil, errors.New("Please fill in Category name")
			}
			return &entity.Category{
				ID:          uuid.New().String(),
				Name:        in.Name,
				Description: in.Description,
				CreatedAt:   time.Now(),
			}, nil
		},
		func(c *fiber.Ctx, item *entity.Category) error {
			var in dto.UpdateCategoryRequest
			if err := c.BodyParser(&in); err != nil {
				return errors.New("Invalid request body")
			}
			if in.Name != nil {
				item.Name = *in.Name
			}
			if in.Description != nil {
				item.Description = *in.Description
			}
			return nil
		},
		func(item *entity.Category) any {
			return dto.CategoryResponse{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Created:     item.CreatedAt,
			}
		},
	)
}
