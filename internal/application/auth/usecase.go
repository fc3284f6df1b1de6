package auth

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// SettingsAccountsURL destino sugerido tras vincular un proveedor adicional a
// una cuenta con sesión activa.
const SettingsAccountsURL = "/#!/settings/accounts"

// UseCase casos de uso de autenticación: signup/signin locales y el alta,
// vinculación y desvinculación de perfiles OAuth.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Signup crea una cuenta local: hashea la contraseña con bcrypt, deriva
// DisplayName y asigna el rol por defecto. El DTO no admite roles, así que
// nada de lo que envíe el cliente puede alterarlos.
func (uc *UseCase) Signup(in dto.SignupRequest) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Provider:     entity.ProviderLocal,
		Roles:        []string{entity.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.ComputeDisplayName()
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// Signin verifica username + password. Cualquier fallo (cuenta inexistente o
// contraseña incorrecta) devuelve ErrInvalidCredentials sin distinguir el
// motivo.
func (uc *UseCase) Signin(in dto.SigninRequest) (*entity.User, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user.Sanitized(), nil
}

// SaveOAuthProfile upsert idempotente de un perfil OAuth. Devuelve el usuario
// resultante y, al vincular un proveedor adicional, la URL sugerida de
// redirección.
//
// Sin usuario de sesión: busca la cuenta por (provider, identificador) en el
// slot principal y en el mapa de proveedores adicionales; si no existe, crea
// una cuenta nueva con un username libre de colisiones. Con usuario de
// sesión: adjunta el payload bajo el mapa de proveedores adicionales, salvo
// que ese proveedor ya esté vinculado, en cuyo caso devuelve
// ErrProviderAlreadyLinked junto al usuario sin modificar.
func (uc *UseCase) SaveOAuthProfile(sessionUser *entity.User, p Profile) (*entity.User, string, error) {
	if sessionUser == nil {
		existing, err := uc.users.FindByProviderID(p.Provider, p.IdentifierField, p.ID)
		if err != nil {
			return nil, "", err
		}
		if existing != nil {
			return existing.Sanitized(), "", nil
		}
		username, err := uc.users.NextAvailableUsername(usernameCandidate(p))
		if err != nil {
			return nil, "", err
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			Email:        p.Email,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DisplayName:  p.DisplayName,
			Provider:     p.Provider,
			ProviderData: p.Data,
			Roles:        []string{entity.RoleUser},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if user.DisplayName == "" {
			user.ComputeDisplayName()
		}
		if err := uc.users.Create(user); err != nil {
			return nil, "", err
		}
		return user.Sanitized(), "", nil
	}

	alreadyLinked := sessionUser.Provider == p.Provider
	if _, ok := sessionUser.Providers[p.Provider]; ok {
		alreadyLinked = true
	}
	if alreadyLinked {
		// Rechazo sin efectos: el usuario queda intacto.
		return sessionUser.Sanitized(), "", domain.ErrProviderAlreadyLinked
	}
	if sessionUser.Providers == nil {
		sessionUser.Providers = make(map[string]json.RawMessage)
	}
	sessionUser.Providers[p.Provider] = p.Data
	sessionUser.UpdatedAt = time.Now()
	if err := uc.users.Update(sessionUser); err != nil {
		return nil, "", err
	}
	return sessionUser.Sanitized(), SettingsAccountsURL, nil
}

// RemoveProvider desvincula un proveedor adicional de la cuenta y persiste.
func (uc *UseCase) RemoveProvider(user *entity.User, provider string) (*entity.User, error) {
	if user == nil {
		return nil, domain.ErrNotSignedIn
	}
	if _, ok := user.Providers[provider]; !ok {
		return nil, domain.ErrProviderNotLinked
	}
	delete(user.Providers, provider)
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}
