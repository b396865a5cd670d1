package repository

//go:generate mockgen -source=invoice_repository.go -destination=mocks/invoice_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create inserta con paid=false; completa ID y AddDate desde la base.
	// comp_code inexistente -> domain.ErrNotFound; amt fuera de rango -> domain.ErrInvalidInput.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	// Update persiste amt, paid y paid_date.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id int64) (bool, error)
}
