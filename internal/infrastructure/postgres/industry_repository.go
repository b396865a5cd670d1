package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository sobre industries y company_industries.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx, `INSERT INTO industries (code, industry) VALUES ($1, $2)`, industry.Code, industry.Label)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.Error{Kind: domain.ErrConflict, Entity: domain.EntityIndustry, Field: "code", Value: industry.Code,
				Message: fmt.Sprintf("Industry with code %s already exists", industry.Code), Err: err}
		}
		return classify("insert industry", err)
	}
	if industry.CompanyCodes == nil {
		industry.CompanyCodes = []string{}
	}
	return nil
}

// List devuelve todas las industrias con los códigos de empresa asociados.
// Una industria sin empresas trae '{}' (no NULL) gracias al FILTER + COALESCE.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	query := `
		SELECT i.code, i.industry,
		       COALESCE(ARRAY_AGG(ci.company_code ORDER BY ci.company_code)
		                FILTER (WHERE ci.company_code IS NOT NULL), '{}') AS company_codes
		  FROM industries i
		  LEFT JOIN company_industries ci ON ci.industry_code = i.code
		 GROUP BY i.code, i.industry
		 ORDER BY i.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, classify("list industries", err)
	}
	defer rows.Close()

	list := make([]*entity.Industry, 0)
	for rows.Next() {
		var ind entity.Industry
		if err := rows.Scan(&ind.Code, &ind.Label, &ind.CompanyCodes); err != nil {
			return nil, classify("scan industry", err)
		}
		if ind.CompanyCodes == nil {
			ind.CompanyCodes = []string{}
		}
		list = append(list, &ind)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list industries", err)
	}
	return list, nil
}

// ListLabelsByCompany devuelve las etiquetas de las industrias de una empresa.
func (r *IndustryRepo) ListLabelsByCompany(ctx context.Context, companyCode string) ([]string, error) {
	query := `
		SELECT i.industry
		  FROM industries i
		  JOIN company_industries ci ON ci.industry_code = i.code
		 WHERE ci.company_code = $1
		 ORDER BY i.industry`
	rows, err := r.q.Query(ctx, query, companyCode)
	if err != nil {
		return nil, classify("list company industries", err)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, classify("scan industry label", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list company industries", err)
	}
	return labels, nil
}

// Associate inserta la fila company_industries. La FK que falle indica qué lado no existe.
func (r *IndustryRepo) Associate(ctx context.Context, link entity.CompanyIndustry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO company_industries (industry_code, company_code) VALUES ($1, $2)`,
		link.IndustryCode, link.CompanyCode)
	if err == nil {
		return nil
	}
	switch {
	case isForeignKeyViolation(err):
		var de *domain.Error
		if constraintName(err) == "company_industries_industry_code_fkey" {
			de = domain.IndustryNotFound(link.IndustryCode)
		} else {
			de = domain.CompanyNotFound(link.CompanyCode)
			de.Field = "company_code"
		}
		de.Err = err
		return de
	case isUniqueViolation(err):
		return &domain.Error{Kind: domain.ErrConflict, Entity: domain.EntityAssociation, Field: "company_code", Value: link.CompanyCode,
			Message: fmt.Sprintf("Industry %s is already associated with company %s", link.IndustryCode, link.CompanyCode), Err: err}
	}
	return classify("associate industry", err)
}

// Disassociate elimina la fila company_industries; false si no existía.
func (r *IndustryRepo) Disassociate(ctx context.Context, link entity.CompanyIndustry) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM company_industries WHERE industry_code = $1 AND company_code = $2`,
		link.IndustryCode, link.CompanyCode)
	if err != nil {
		return false, classify("disassociate industry", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una industria; sus asociaciones caen por ON DELETE CASCADE.
func (r *IndustryRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM industries WHERE code = $1`, code)
	if err != nil {
		return false, classify("delete industry", err)
	}
	return cmd.RowsAffected() > 0, nil
}
