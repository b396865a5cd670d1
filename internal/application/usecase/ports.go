package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn dentro de una transacción con un InvoiceRepository atado a ella.
type InvoiceTxRunner interface {
	RunInvoices(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// EventRecorder recibe los eventos de negocio que alimentan las métricas.
type EventRecorder interface {
	EntityCreated(entity string)
	EntityDeleted(entity string)
	InvoicePaymentChanged(paid bool)
}

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}

// InvoiceXMLBuilder genera el documento XML de intercambio de una factura.
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) EntityCreated(string)       {}
func (nopRecorder) EntityDeleted(string)       {}
func (nopRecorder) InvoicePaymentChanged(bool) {}

func recorderOrNop(r EventRecorder) EventRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
