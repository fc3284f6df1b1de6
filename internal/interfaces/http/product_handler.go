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

// NewProductHandler instancia el CRUD genérico para Product con name como
// campo visible.
func NewProductHandler(uc *usecase.CRUDUseCase[*entity.Product]) *CRUDHandler[*entity.Product] {
	return NewCRUDHandler(uc, "product", "Product",
		func(c *fiber.Ctx) (*entity.Product, error) {
			var in dto.CreateProductRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, errors.New("Invalid request body")
			}
			if in.Name == "" {
				return nil, errors.New("Please fill in Product name")
			}
			return &entity.Product{
				ID:          uuid.New().String(),
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				CreatedAt:   time.Now(),
			}, nil
		},
		func(c *fiber.Ctx, item *entity.Product) error {
			var in dto.UpdateProductRequest
			if err := c.BodyParser(&in); err != nil {
				return errors.New("Invalid request body")
			}
			if in.Name != nil {
				item.Name = *in.Name
			}
			if in.Description != nil {
				item.Description = *in.Description
			}
			if in.Price != nil {
				item.Price = *in.Price
			}
			return nil
		},
		func(item *entity.Product) any {
			return dto.ProductResponse{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Created:     item.CreatedAt,
			}
		},
	)
}
