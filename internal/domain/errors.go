package domain

import (
	"errors"
	"fmt"
)

// Categorías de error de dominio (sin dependencias externas). Cada *Error
// pertenece a una de ellas y errors.Is(err, ErrNotFound) funciona sobre la cadena.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnexpected   = errors.New("error inesperado")
)

// Entidades para Error.Entity.
const (
	EntityCompany     = "company"
	EntityInvoice     = "invoice"
	EntityIndustry    = "industry"
	EntityAssociation = "company_industry"
)

// Error es el error tipado que viaja desde repositorios y casos de uso hasta el
// manejador HTTP terminal.
type Error struct {
	Kind    error  // una de las categorías Err*
	Entity  string // entidad afectada, si aplica
	Field   string // campo de entrada o identificador, si aplica
	Value   string
	Message string // mensaje legible para el cliente
	Err     error  // causa original (p. ej. *pgconn.PgError)
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == ErrUnexpected {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap expone la categoría y la causa para errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Validation construye un error de entrada inválida asociado a field.
func Validation(field, msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Field: field, Message: msg}
}

// NotFound construye un error de recurso inexistente.
func NotFound(entity, field, value, msg string) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, Field: field, Value: value, Message: msg}
}

// Conflict construye un error de unicidad.
func Conflict(entity, field, value, msg string) *Error {
	return &Error{Kind: ErrConflict, Entity: entity, Field: field, Value: value, Message: msg}
}

// Unexpected envuelve una falla de infraestructura.
func Unexpected(op string, err error) *Error {
	return &Error{Kind: ErrUnexpected, Message: op, Err: err}
}

// CompanyNotFound es el 404 estándar de empresas.
func CompanyNotFound(code string) *Error {
	return NotFound(EntityCompany, "code", code, fmt.Sprintf("Company with code %s not found", code))
}

// InvoiceNotFound es el 404 estándar de facturas.
func InvoiceNotFound(id int64) *Error {
	return NotFound(EntityInvoice, "id", fmt.Sprint(id), fmt.Sprintf("Invoice with id %d not found", id))
}

// IndustryNotFound es el 404 estándar de industrias.
func IndustryNotFound(code string) *Error {
	return NotFound(EntityIndustry, "code", code, fmt.Sprintf("Industry with code %s not found", code))
}

// AssociationNotFound es el 404 de una asociación industria-empresa inexistente.
func AssociationNotFound(industryCode, companyCode string) *Error {
	return NotFound(EntityAssociation, "company_code", companyCode,
		fmt.Sprintf("Association between industry %s and company %s not found", industryCode, companyCode))
}

// KindOf devuelve la categoría de err; ErrUnexpected si no es un error de dominio.
func KindOf(err error) error {
	for _, k := range []error{ErrInvalidInput, ErrNotFound, ErrConflict} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrUnexpected
}
