package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
	events     EventRecorder
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// invoices e industries alimentan el detalle de la empresa.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
	events EventRecorder,
) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, invoices: invoices, industries: industries, events: recorderOrNop(events)}
}

// List devuelve code y name de todas las empresas. Sin empresas devuelve lista vacía.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get obtiene la empresa con sus facturas e industrias. Las dos consultas de
// relaciones corren en paralelo una vez confirmada la existencia.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailEnvelope, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.CompanyNotFound(code)
	}

	detail := entity.CompanyDetail{Company: *company}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := uc.invoices.ListIDsByCompany(gctx, code)
		detail.InvoiceIDs = ids
		return err
	})
	g.Go(func() error {
		labels, err := uc.industries.ListLabelsByCompany(gctx, code)
		detail.Industries = labels
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.CompanyDetailEnvelope{Company: toCompanyDetailResponse(&detail)}, nil
}

// Create crea una empresa; el código es el slug del nombre.
// Devuelve un error de conflicto si el código (o el nombre) ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyEnvelope, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	code, err := codeFor("name", in.Name)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	uc.events.EntityCreated(domain.EntityCompany)
	return &dto.CompanyEnvelope{Company: toCompanyResponse(company)}, nil
}

// Update reemplaza name y description. El código nunca cambia.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyEnvelope, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, &entity.Company{Code: code, Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.CompanyNotFound(code)
	}
	return &dto.CompanyEnvelope{Company: toCompanyResponse(updated)}, nil
}

// Delete elimina una empresa por código.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.StatusResponse, error) {
	deleted, err := uc.repo.Delete(ctx, code)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.CompanyNotFound(code)
	}
	uc.events.EntityDeleted(domain.EntityCompany)
	return &dto.StatusResponse{Status: dto.StatusDeleted}, nil
}

// codeFor deriva el código de un nombre ya validado como no vacío.
func codeFor(field, name string) (string, error) {
	code, err := slug.Make(name)
	if errors.Is(err, slug.ErrEmpty) {
		return "", domain.Validation(field, field+" must contain at least one letter or digit")
	}
	if err != nil {
		return "", domain.Validation(field, field+" is invalid")
	}
	return code, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}

func toCompanyDetailResponse(d *entity.CompanyDetail) dto.CompanyDetailResponse {
	out := dto.CompanyDetailResponse{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Invoices:    d.InvoiceIDs,
		Industries:  d.Industries,
	}
	if out.Invoices == nil {
		out.Invoices = []int64{}
	}
	if out.Industries == nil {
		out.Industries = []string{}
	}
	return out
}
