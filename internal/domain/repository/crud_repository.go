package repository

import "github.com/jcamargo/tienda-api/internal/domain/entity"

// CRUDRepository puerto de persistencia genérico para recursos simples
// (Category, Product). El parámetro de tipo es el puntero a la entidad.
//
// Contrato de errores: Create devuelve domain.ErrDuplicate ante violación de
// unicidad; GetByID devuelve domain.ErrInvalidID si el id no es un UUID y
// domain.ErrNotFound si no existe la fila.
type CRUDRepository[T entity.Resource] interface {
	// List devuelve todos los recursos ordenados por created_at DESC.
	List() ([]T, error)
	Create(item T) error
	GetByID(id string) (T, error)
	Update(item T) error
	Delete(id string) error
}
