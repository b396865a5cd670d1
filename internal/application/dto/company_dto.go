package dto

// CreateCompanyRequest entrada para crear una empresa. El código se deriva de name.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateCompanyRequest entrada para reemplazar name y description.
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// CompanySummary elemento del listado de empresas.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse GET /companies.
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyResponse empresa sin relaciones.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyEnvelope POST/PUT /companies.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailResponse empresa con ids de facturas y nombres de industrias.
type CompanyDetailResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyDetailEnvelope GET /companies/:code.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}
