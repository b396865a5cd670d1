// Package ubl construye el documento de intercambio de una factura como un
// Invoice UBL 2.1 reducido (sin extensiones ni firma).
package ubl

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Códigos fijos del documento.
const (
	UBLVersion   = "2.1"
	InvoiceType  = "380" // UNCL1001: factura comercial
	CurrencyCode = "USD"
)

var _ usecase.InvoiceXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService implementa usecase.InvoiceXMLBuilder con etree.
type XMLBuilderService struct {
	currency string
}

// NewXMLBuilderService crea el servicio. currency vacío usa CurrencyCode.
func NewXMLBuilderService(currency string) *XMLBuilderService {
	if currency == "" {
		currency = CurrencyCode
	}
	return &XMLBuilderService{currency: currency}
}

// BuildInvoiceXML genera el XML indentado de la factura.
func (s *XMLBuilderService) BuildInvoiceXML(invoice *entity.Invoice, company *entity.Company) ([]byte, error) {
	if invoice == nil || company == nil {
		return nil, fmt.Errorf("ubl: faltan invoice o company")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", UBLVersion)
	cbc(root, "ID", strconv.FormatInt(invoice.ID, 10))
	cbc(root, "IssueDate", invoice.AddDate.Format(dto.DateLayout))
	cbc(root, "InvoiceTypeCode", InvoiceType)
	cbc(root, "DocumentCurrencyCode", s.currency)

	// Cliente facturado
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	cbc(party.CreateElement("cac:PartyIdentification"), "ID", company.Code)
	cbc(party.CreateElement("cac:PartyName"), "Name", company.Name)
	if company.Description != "" {
		cbc(party, "Note", company.Description)
	}

	// Estado de pago
	if invoice.Paid {
		pm := root.CreateElement("cac:PaymentMeans")
		cbc(pm, "PaymentMeansCode", "1")
		if invoice.PaidDate != nil {
			cbc(pm, "PaymentDueDate", invoice.PaidDate.Format(dto.DateLayout))
		}
		prepaid := root.CreateElement("cac:PrepaidPayment")
		s.amount(prepaid, "PaidAmount", invoice)
		if invoice.PaidDate != nil {
			cbc(prepaid, "PaidDate", invoice.PaidDate.Format(dto.DateLayout))
		}
	}

	// Totales
	total := root.CreateElement("cac:LegalMonetaryTotal")
	s.amount(total, "LineExtensionAmount", invoice)
	s.amount(total, "PayableAmount", invoice)

	// Única línea
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", "1")
	qty := cbc(line, "InvoicedQuantity", "1")
	qty.CreateAttr("unitCode", "EA")
	s.amount(line, "LineExtensionAmount", invoice)
	cbc(line.CreateElement("cac:Item"), "Description", "Services billed to "+company.Name)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar: %w", err)
	}
	return out, nil
}

// cbc agrega un elemento básico cbc:tag con texto value.
func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func (s *XMLBuilderService) amount(parent *etree.Element, tag string, invoice *entity.Invoice) {
	el := cbc(parent, tag, invoice.Amt.StringFixed(2))
	el.CreateAttr("currencyID", s.currency)
}
