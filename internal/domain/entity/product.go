package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Name es el campo visible y único.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

// GetID implementa Resource.
func (p *Product) GetID() string { return p.ID }

// DisplayValue implementa Resource: valor del campo visible.
func (p *Product) DisplayValue() string { return p.Name }
