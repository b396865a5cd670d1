package entity

// Company representa una empresa identificada por su código (slug del nombre).
// El código se asigna al crearla y nunca se regenera.
type Company struct {
	Code        string
	Name        string
	Description string
}

// CompanyDetail agrega a la empresa sus facturas e industrias asociadas.
type CompanyDetail struct {
	Company
	InvoiceIDs []int64  // ids de facturas de la empresa
	Industries []string // etiquetas de las industrias asociadas
}
