package dto

// ErrorResponse cuerpo de error HTTP: {"error": {...}, "message": "..."}.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message"`
}

// ErrorDetail detalle estructurado del error.
type ErrorDetail struct {
	Status int    `json:"status"`
	Code   string `json:"code"` // VALIDATION, NOT_FOUND, CONFLICT, INTERNAL, ...
	Entity string `json:"entity,omitempty"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
}

// StatusResponse respuesta de borrado de empresas y facturas.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse respuesta con mensaje libre (industrias).
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusDeleted valor de StatusResponse tras un borrado.
const StatusDeleted = "deleted"

// DateLayout formato de fechas (add_date, paid_date) en las respuestas.
const DateLayout = "2006-01-02"
