package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" validate:"required,max=200"`
	Amt      decimal.Decimal `json:"amt" validate:"required,gt=0"`
}

// UpdateInvoiceRequest entrada para actualizar una factura. Paid nil conserva el estado actual.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt" validate:"required,gt=0"`
	Paid *bool           `json:"paid"`
}

// InvoiceSummary elemento del listado de facturas.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse GET /invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceResponse factura completa. Amt se serializa como número JSON.
type InvoiceResponse struct {
	ID       int64       `json:"id"`
	CompCode string      `json:"comp_code"`
	Amt      json.Number `json:"amt" swaggertype:"number"`
	Paid     bool        `json:"paid"`
	AddDate  string      `json:"add_date" example:"2026-10-17"`
	PaidDate *string     `json:"paid_date" example:"2026-10-17"`
}

// InvoiceEnvelope GET/POST/PUT /invoices.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}
