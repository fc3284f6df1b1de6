package auth

import "encoding/json"

// Profile perfil normalizado que entrega un proveedor OAuth tras el
// intercambio de código. Data conserva el payload opaco completo tal como lo
// devolvió el proveedor; ID es el valor del campo identificador dentro de ese
// payload (IdentifierField), que es la clave de búsqueda de cuentas.
type Profile struct {
	Provider        string
	ID              string
	IdentifierField string
	Username        string
	Email           string
	FirstName       string
	LastName        string
	DisplayName     string
	Data            json.RawMessage
}
