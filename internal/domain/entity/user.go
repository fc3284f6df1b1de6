package entity

import (
	"encoding/json"
	"time"
)

// ProviderLocal proveedor de credenciales locales (username + password).
// Cualquier otro valor es el nombre de un proveedor OAuth (google, facebook...).
const ProviderLocal = "local"

// RoleUser rol por defecto de toda cuenta nueva.
const RoleUser = "user"

// User representa una cuenta del sistema. Puede originarse por signup local o
// por el primer login OAuth; PasswordHash solo existe para provider "local"
// (bcrypt incluye el salt, no hay columna separada).
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	FirstName    string
	LastName     string
	DisplayName  string // derivado: FirstName + " " + LastName
	PasswordHash string
	Provider     string
	ProviderData json.RawMessage            // payload opaco del proveedor principal
	Providers    map[string]json.RawMessage // proveedores adicionales vinculados
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComputeDisplayName recalcula DisplayName a partir de nombre y apellido.
// Se invoca en signup y en cada actualización de perfil.
func (u *User) ComputeDisplayName() {
	u.DisplayName = u.FirstName + " " + u.LastName
}

// Sanitized devuelve una copia sin credenciales, apta para respuestas y sesión.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}
