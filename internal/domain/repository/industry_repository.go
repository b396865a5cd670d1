package repository

//go:generate mockgen -source=industry_repository.go -destination=mocks/industry_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y la tabla company_industries.
type IndustryRepository interface {
	Create(ctx context.Context, industry *entity.Industry) error
	// List incluye los códigos de empresa asociados; CompanyCodes nunca es nil.
	List(ctx context.Context) ([]*entity.Industry, error)
	ListLabelsByCompany(ctx context.Context, companyCode string) ([]string, error)
	// Associate: industria o empresa inexistente -> domain.ErrNotFound; par repetido -> domain.ErrConflict.
	Associate(ctx context.Context, link entity.CompanyIndustry) error
	Disassociate(ctx context.Context, link entity.CompanyIndustry) (bool, error)
	Delete(ctx context.Context, code string) (bool, error)
}
