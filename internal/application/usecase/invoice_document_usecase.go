package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceDocumentUseCase genera las representaciones descargables (PDF, XML) de una factura.
type InvoiceDocumentUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	pdf       InvoicePDFGenerator
	xml       InvoiceXMLBuilder
}

// NewInvoiceDocumentUseCase construye el caso de uso.
func NewInvoiceDocumentUseCase(
	invoices repository.InvoiceRepository,
	companies repository.CompanyRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLBuilder,
) *InvoiceDocumentUseCase {
	return &InvoiceDocumentUseCase{invoices: invoices, companies: companies, pdf: pdf, xml: xml}
}

// PDF devuelve el PDF de la factura id.
func (uc *InvoiceDocumentUseCase) PDF(ctx context.Context, id int64) ([]byte, error) {
	inv, company, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, domain.Unexpected(fmt.Sprintf("render invoice %d pdf", id), err)
	}
	return out, nil
}

// XML devuelve el documento XML de la factura id.
func (uc *InvoiceDocumentUseCase) XML(ctx context.Context, id int64) ([]byte, error) {
	inv, company, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.xml.BuildInvoiceXML(inv, company)
	if err != nil {
		return nil, domain.Unexpected(fmt.Sprintf("render invoice %d xml", id), err)
	}
	return out, nil
}

func (uc *InvoiceDocumentUseCase) load(ctx context.Context, id int64) (*entity.Invoice, *entity.Company, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.InvoiceNotFound(id)
	}
	company, err := uc.companies.GetByCode(ctx, inv.CompCode)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		// La FK lo impide; solo ocurre si la empresa se borró entre ambas lecturas.
		return nil, nil, domain.CompanyNotFound(inv.CompCode)
	}
	return inv, company, nil
}
