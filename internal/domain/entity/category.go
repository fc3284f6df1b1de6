package entity

import "time"

// Category categoría de productos de la tienda. Name es el campo visible y
// único que se usa en los mensajes de duplicado.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// GetID implementa Resource.
func (c *Category) GetID() string { return c.ID }

// DisplayValue implementa Resource: valor del campo visible.
func (c *Category) DisplayValue() string { return c.Name }
