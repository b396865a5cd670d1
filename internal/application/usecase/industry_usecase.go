package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// IndustryUseCase casos de uso de industrias y su asociación con empresas.
type IndustryUseCase struct {
	repo   repository.IndustryRepository
	events EventRecorder
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repo repository.IndustryRepository, events EventRecorder) *IndustryUseCase {
	return &IndustryUseCase{repo: repo, events: recorderOrNop(events)}
}

// Create crea una industria; el código es el slug de la etiqueta.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryEnvelope, error) {
	in.Industry = strings.TrimSpace(in.Industry)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	code, err := codeFor("industry", in.Industry)
	if err != nil {
		return nil, err
	}
	industry := &entity.Industry{Code: code, Label: in.Industry}
	if err := uc.repo.Create(ctx, industry); err != nil {
		return nil, err
	}
	uc.events.EntityCreated(domain.EntityIndustry)
	return &dto.IndustryEnvelope{Industry: dto.IndustryResponse{Code: industry.Code, Industry: industry.Label}}, nil
}

// List devuelve todas las industrias con sus códigos de empresa.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryListItem, 0, len(list))
	for _, ind := range list {
		codes := ind.CompanyCodes
		if codes == nil {
			codes = []string{}
		}
		items = append(items, dto.IndustryListItem{Code: ind.Code, Industry: ind.Label, CompanyCodes: codes})
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Associate vincula una empresa a la industria industryCode.
func (uc *IndustryUseCase) Associate(ctx context.Context, industryCode string, in dto.AssociateRequest) (*dto.AssociateResponse, error) {
	in.CompanyCode = strings.TrimSpace(in.CompanyCode)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	link := entity.CompanyIndustry{IndustryCode: industryCode, CompanyCode: in.CompanyCode}
	if err := uc.repo.Associate(ctx, link); err != nil {
		return nil, err
	}
	uc.events.EntityCreated(domain.EntityAssociation)
	return &dto.AssociateResponse{IndustryCode: industryCode}, nil
}

// Disassociate elimina el vínculo entre la industria y la empresa.
func (uc *IndustryUseCase) Disassociate(ctx context.Context, industryCode, companyCode string) (*dto.MessageResponse, error) {
	removed, err := uc.repo.Disassociate(ctx, entity.CompanyIndustry{IndustryCode: industryCode, CompanyCode: companyCode})
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domain.AssociationNotFound(industryCode, companyCode)
	}
	uc.events.EntityDeleted(domain.EntityAssociation)
	return &dto.MessageResponse{Message: fmt.Sprintf("Industry %s disassociated from company %s", industryCode, companyCode)}, nil
}

// Delete elimina una industria por código.
func (uc *IndustryUseCase) Delete(ctx context.Context, code string) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(ctx, code)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.IndustryNotFound(code)
	}
	uc.events.EntityDeleted(domain.EntityIndustry)
	return &dto.MessageResponse{Message: fmt.Sprintf("Industry with code %s deleted", code)}, nil
}
