package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, company.Code, company.Name, company.Description)
	if err != nil {
		if isUniqueViolation(err) {
			if constraintName(err) == "companies_name_key" {
				return &domain.Error{Kind: domain.ErrConflict, Entity: domain.EntityCompany, Field: "name", Value: company.Name,
					Message: fmt.Sprintf("Company with name %s already exists", company.Name), Err: err}
			}
			return &domain.Error{Kind: domain.ErrConflict, Entity: domain.EntityCompany, Field: "code", Value: company.Code,
				Message: fmt.Sprintf("Company with code %s already exists", company.Code), Err: err}
		}
		return classify("insert company", err)
	}
	return nil
}

// GetByCode obtiene una empresa por código.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `SELECT code, name, description FROM companies WHERE code = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, classify("get company", err)
	}
	return &c, nil
}

// List devuelve code y name de todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name FROM companies ORDER BY code`)
	if err != nil {
		return nil, classify("list companies", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, classify("scan company", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list companies", err)
	}
	return list, nil
}

// Update actualiza name y description; el código no cambia nunca.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		UPDATE companies SET name = $2, description = $3
		 WHERE code = $1
		RETURNING code, name, description`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, company.Code, company.Name, company.Description).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, &domain.Error{Kind: domain.ErrConflict, Entity: domain.EntityCompany, Field: "name", Value: company.Name,
				Message: fmt.Sprintf("Company with name %s already exists", company.Name), Err: err}
		}
		return nil, classify("update company", err)
	}
	return &c, nil
}

// Delete elimina una empresa por código. Sus facturas y asociaciones caen por ON DELETE CASCADE.
func (r *CompanyRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return false, classify("delete company", err)
	}
	return cmd.RowsAffected() > 0, nil
}
