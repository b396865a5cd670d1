package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func scanInvoice(row interface{ Scan(...any) error }) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserta la factura sin pagar; add_date la fija la base (CURRENT_DATE).
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns
	created, err := scanInvoice(r.q.QueryRow(ctx, query, invoice.CompCode, invoice.Amt))
	if err != nil {
		if isForeignKeyViolation(err) {
			de := domain.CompanyNotFound(invoice.CompCode)
			de.Field, de.Err = "comp_code", err
			return de
		}
		return classify("insert invoice", err)
	}
	*invoice = *created
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la factura bloqueando la fila; solo tiene efecto dentro de una tx.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) get(ctx context.Context, query string, id int64) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, classify("get invoice", err)
	}
	return inv, nil
}

// List devuelve id y comp_code de todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, classify("list invoices", err)
	}
	defer rows.Close()

	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, classify("scan invoice", err)
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list invoices", err)
	}
	return list, nil
}

// ListIDsByCompany devuelve los ids de las facturas de una empresa en orden ascendente.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, classify("list invoice ids", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, classify("scan invoice id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list invoice ids", err)
	}
	return ids, nil
}

// Update persiste amt, paid y paid_date tal como vienen en la entidad.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET amt = $2, paid = $3, paid_date = $4
		 WHERE id = $1
		RETURNING ` + invoiceColumns
	var paidDate *time.Time
	if invoice.PaidDate != nil {
		d := entity.DateOf(*invoice.PaidDate)
		paidDate = &d
	}
	updated, err := scanInvoice(r.q.QueryRow(ctx, query, invoice.ID, invoice.Amt, invoice.Paid, paidDate))
	if err != nil {
		if isNoRows(err) {
			return domain.InvoiceNotFound(invoice.ID)
		}
		return classify(fmt.Sprintf("update invoice %d", invoice.ID), err)
	}
	*invoice = *updated
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, classify("delete invoice", err)
	}
	return cmd.RowsAffected() > 0, nil
}
