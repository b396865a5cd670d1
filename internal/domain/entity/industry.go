package entity

// Industry representa un sector económico; Code es el slug de Label.
type Industry struct {
	Code         string
	Label        string
	CompanyCodes []string // empresas asociadas vía company_industries (nunca nil en listados)
}

// CompanyIndustry es la fila de asociación muchos-a-muchos.
type CompanyIndustry struct {
	CompanyCode  string
	IndustryCode string
}
