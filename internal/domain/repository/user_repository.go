package repository

import "github.com/jcamargo/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay coincidencia; Create devuelve
// *domain.DuplicateError con el valor en conflicto (username o email).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// FindByProviderID busca una cuenta por (provider, identificador) tanto en
	// el slot principal (provider + provider_data) como en el mapa de
	// proveedores adicionales.
	FindByProviderID(provider, identifierField, identifier string) (*entity.User, error)
	Update(user *entity.User) error
	// NextAvailableUsername resuelve colisiones de username añadiendo un
	// sufijo numérico (base, base1, base2, ...). La unicidad es
	// responsabilidad de la capa de persistencia.
	NextAvailableUsername(base string) (string, error)
}
