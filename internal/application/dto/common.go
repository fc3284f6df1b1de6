package dto

// ErrorResponse cuerpo de error HTTP. El contrato del API expone solo un
// mensaje legible, sin códigos estructurados.
type ErrorResponse struct {
	Message string `json:"message"`
}
