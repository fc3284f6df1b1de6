package usecase

import (
	"time"

	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/domain/repository"
)

// ProfileUseCase actualización del perfil del usuario con sesión activa.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Update copia campo a campo el DTO permitido sobre el usuario, recalcula
// DisplayName, marca updated y persiste. Sin usuario de sesión devuelve
// ErrNotSignedIn ("User is not signed in" en el API).
func (uc *ProfileUseCase) Update(user *entity.User, in dto.UpdateProfileRequest) (*entity.User, error) {
	if user == nil {
		return nil, domain.ErrNotSignedIn
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	user.ComputeDisplayName()
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}
