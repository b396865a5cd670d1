package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja industrias y su asociación con empresas.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias con sus empresas
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListResponse
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "Etiqueta"
// @Success      201   {object}  dto.IndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Associate godoc
// @Summary      Asociar empresa a industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        code  path  string                true  "Código de la industria"
// @Param        body  body  dto.AssociateRequest  true  "Empresa"
// @Success      201   {object}  dto.AssociateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /industries/{code}/company [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Associate(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Disassociate godoc
// @Summary      Desasociar empresa de industria
// @Tags         industries
// @Produce      json
// @Param        industry_code  path  string  true  "Código de la industria"
// @Param        company_code   path  string  true  "Código de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /industries/{industry_code}/company/{company_code} [delete]
func (h *IndustryHandler) Disassociate(c *fiber.Ctx) error {
	out, err := h.uc.Disassociate(c.UserContext(), c.Params("industry_code"), c.Params("company_code"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar industria
// @Tags         industries
// @Produce      json
// @Param        code  path  string  true  "Código de la industria"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /industries/{code} [delete]
func (h *IndustryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
