package entity

// Resource contrato mínimo que exige el CRUD genérico: identidad y el valor
// del campo visible para mensajes de unicidad.
type Resource interface {
	GetID() string
	DisplayValue() string
}
