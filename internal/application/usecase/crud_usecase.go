package usecase

import (
	"errors"

	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/domain/repository"
)

// CRUDUseCase casos de uso genéricos list/create/read/update/delete para
// recursos simples. Una instancia por recurso (Category, Product), todas
// compartiendo la misma lógica; solo cambian el repositorio y la entidad.
type CRUDUseCase[T entity.Resource] struct {
	repo repository.CRUDRepository[T]
}

// NewCRUDUseCase construye el caso de uso sobre el puerto de persistencia.
func NewCRUDUseCase[T entity.Resource](repo repository.CRUDRepository[T]) *CRUDUseCase[T] {
	return &CRUDUseCase[T]{repo: repo}
}

// List devuelve todos los recursos, más recientes primero.
func (uc *CRUDUseCase[T]) List() ([]T, error) {
	return uc.repo.List()
}

// Create persiste un recurso ya construido. Ante violación de unicidad
// devuelve DuplicateError con el valor del campo visible, que es el mensaje
// que ve el cliente.
func (uc *CRUDUseCase[T]) Create(item T) (T, error) {
	if err := uc.repo.Create(item); err != nil {
		var zero T
		if errors.Is(err, domain.ErrDuplicate) {
			return zero, &domain.DuplicateError{Value: item.DisplayValue()}
		}
		return zero, err
	}
	return item, nil
}

// GetByID resuelve un id a su recurso (ErrInvalidID / ErrNotFound).
func (uc *CRUDUseCase[T]) GetByID(id string) (T, error) {
	return uc.repo.GetByID(id)
}

// Update persiste los cambios de un recurso precargado.
func (uc *CRUDUseCase[T]) Update(item T) (T, error) {
	if err := uc.repo.Update(item); err != nil {
		var zero T
		if errors.Is(err, domain.ErrDuplicate) {
			return zero, &domain.DuplicateError{Value: item.DisplayValue()}
		}
		return zero, err
	}
	return item, nil
}

// Delete elimina el recurso por id.
func (uc *CRUDUseCase[T]) Delete(id string) error {
	return uc.repo.Delete(id)
}
