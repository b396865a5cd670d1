package dto

// CreateIndustryRequest entrada para crear una industria. El código se deriva de industry.
type CreateIndustryRequest struct {
	Industry string `json:"industry" validate:"required,max=200"`
}

// IndustryResponse industria recién creada.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryEnvelope POST /industries.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryListItem industria con los códigos de sus empresas (nunca null).
type IndustryListItem struct {
	Code         string   `json:"code"`
	Industry     string   `json:"industry"`
	CompanyCodes []string `json:"company_codes"`
}

// IndustryListResponse GET /industries.
type IndustryListResponse struct {
	Industries []IndustryListItem `json:"industries"`
}

// AssociateRequest POST /industries/:code/company.
type AssociateRequest struct {
	CompanyCode string `json:"company_code" validate:"required,max=200"`
}

// AssociateResponse respuesta de una asociación creada.
type AssociateResponse struct {
	IndustryCode string `json:"industry_code"`
}
