package repository

//go:generate mockgen -source=company_repository.go -destination=mocks/company_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Las búsquedas devuelven (nil, nil) cuando la empresa no existe.
type CompanyRepository interface {
	// Create inserta la empresa; código repetido -> domain.ErrConflict.
	Create(ctx context.Context, company *entity.Company) error
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// List devuelve code y name de todas las empresas, ordenadas por código.
	List(ctx context.Context) ([]*entity.Company, error)
	// Update reemplaza name y description; devuelve nil si el código no existe.
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Delete devuelve false si el código no existe. Facturas y asociaciones
	// se eliminan en cascada por las FK.
	Delete(ctx context.Context, code string) (bool, error)
}
