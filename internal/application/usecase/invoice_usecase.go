package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas, incluida la transición paid/paid_date.
type InvoiceUseCase struct {
	repo   repository.InvoiceRepository
	tx     InvoiceTxRunner
	events EventRecorder
	now    func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. tx debe abrir transacciones sobre la misma base que repo.
func NewInvoiceUseCase(repo repository.InvoiceRepository, tx InvoiceTxRunner, events EventRecorder) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, tx: tx, events: recorderOrNop(events), now: time.Now}
}

// WithClock reemplaza el reloj usado para fijar paid_date (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List devuelve id y comp_code de todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceEnvelope, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.InvoiceNotFound(id)
	}
	return &dto.InvoiceEnvelope{Invoice: ToInvoiceResponse(inv)}, nil
}

// Create registra una factura sin pagar para una empresa existente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	in.CompCode = strings.TrimSpace(in.CompCode)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	inv := &entity.Invoice{CompCode: in.CompCode, Amt: in.Amt}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	uc.events.EntityCreated(domain.EntityInvoice)
	return &dto.InvoiceEnvelope{Invoice: ToInvoiceResponse(inv)}, nil
}

// Update cambia amt y, si viene, paid. La lectura y la escritura ocurren en la
// misma transacción con la fila bloqueada, de modo que la decisión sobre
// paid_date nunca se toma sobre un estado obsoleto.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var (
		result  *entity.Invoice
		changed bool
	)
	err := uc.tx.RunInvoices(ctx, func(repo repository.InvoiceRepository) error {
		inv, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.InvoiceNotFound(id)
		}
		inv.Amt = in.Amt
		if in.Paid != nil {
			changed = inv.Paid != *in.Paid
			inv.SetPaid(*in.Paid, uc.now())
		}
		if err := repo.Update(ctx, inv); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		uc.events.InvoicePaymentChanged(result.Paid)
	}
	return &dto.InvoiceEnvelope{Invoice: ToInvoiceResponse(result)}, nil
}

// Delete elimina una factura por ID.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.InvoiceNotFound(id)
	}
	uc.events.EntityDeleted(domain.EntityInvoice)
	return &dto.StatusResponse{Status: dto.StatusDeleted}, nil
}

// ToInvoiceResponse mapea la entidad al cuerpo JSON (fechas YYYY-MM-DD, amt numérico).
func ToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	out := dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      json.Number(inv.Amt.String()),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dto.DateLayout),
	}
	if inv.PaidDate != nil {
		d := inv.PaidDate.Format(dto.DateLayout)
		out.PaidDate = &d
	}
	return out
}
