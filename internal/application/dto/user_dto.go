package dto

import (
	"encoding/json"
	"time"

	"github.com/jcamargo/tienda-api/internal/domain/entity"
)

// SignupRequest entrada para registro local. No existe campo roles: el
// allow-list del DTO impide escalar privilegios por mass-assignment.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// SigninRequest credenciales locales.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest campos permitidos al actualizar el perfil. Punteros
// para distinguir "no enviado" de "vacío"; roles queda fuera a propósito.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
}

// UserResponse usuario saneado (nunca incluye hash de contraseña ni salt).
type UserResponse struct {
	ID           string                     `json:"id"`
	Username     string                     `json:"username"`
	Email        string                     `json:"email"`
	FirstName    string                     `json:"firstName"`
	LastName     string                     `json:"lastName"`
	DisplayName  string                     `json:"displayName"`
	Provider     string                     `json:"provider"`
	ProviderData json.RawMessage            `json:"providerData,omitempty"`
	Providers    map[string]json.RawMessage `json:"additionalProvidersData,omitempty"`
	Roles        []string                   `json:"roles"`
	Created      time.Time                  `json:"created"`
	Updated      time.Time                  `json:"updated"`
}

// NewUserResponse mapea la entidad a su representación saneada.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		DisplayName:  u.DisplayName,
		Provider:     u.Provider,
		ProviderData: u.ProviderData,
		Providers:    u.Providers,
		Roles:        u.Roles,
		Created:      u.CreatedAt,
		Updated:      u.UpdatedAt,
	}
}
