package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/domain/repository/mocks"
	"github.com/jhoicas/biztime-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/biztime-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

type inlineTx struct{ repo repository.InvoiceRepository }

func (tx inlineTx) RunInvoices(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(tx.repo)
}

type fakeDocs struct{}

func (fakeDocs) GenerateInvoicePDF(context.Context, *entity.Invoice, *entity.Company) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}

func (fakeDocs) BuildInvoiceXML(*entity.Invoice, *entity.Company) ([]byte, error) {
	return []byte("<Invoice/>"), nil
}

type testEnv struct {
	app        *fiber.App
	companies  *mocks.MockCompanyRepository
	invoices   *mocks.MockInvoiceRepository
	industries *mocks.MockIndustryRepository
	metrics    *metrics.Metrics
}

// newTestEnv arma la app completa sobre repositorios mock. Modificar deps antes
// de construir la app con los opts.
func newTestEnv(t *testing.T, opts ...func(*apphttp.RouterDeps)) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		companies:  mocks.NewMockCompanyRepository(ctrl),
		invoices:   mocks.NewMockInvoiceRepository(ctrl),
		industries: mocks.NewMockIndustryRepository(ctrl),
		metrics:    metrics.New(),
	}
	deps := apphttp.RouterDeps{
		AppName:    "biztime-test",
		CompanyUC:  usecase.NewCompanyUseCase(env.companies, env.invoices, env.industries, env.metrics),
		InvoiceUC:  usecase.NewInvoiceUseCase(env.invoices, inlineTx{env.invoices}, env.metrics).WithClock(func() time.Time { return fixedNow }),
		IndustryUC: usecase.NewIndustryUseCase(env.industries, env.metrics),
		DocumentUC: usecase.NewInvoiceDocumentUseCase(env.invoices, env.companies, fakeDocs{}, fakeDocs{}),
		Metrics:    env.metrics,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	env.app = apphttp.NewApp(deps)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas generales
// ──────────────────────────────────────────────────────────────────────────────

func TestRaiz_Bienvenida(t *testing.T) {
	env := newTestEnv(t)
	resp, raw := env.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, apphttp.WelcomeMessage, string(raw))
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRutaInexistente_404(t *testing.T) {
	env := newTestEnv(t)
	resp, raw := env.do(t, http.MethodGet, "/nope/nada", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeError(t, raw)
	assert.Equal(t, "Not Found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.Error.Status)
	assert.Equal(t, apphttp.CodeNotFound, body.Error.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, func(d *apphttp.RouterDeps) {
		d.Ping = func(context.Context) error { return nil }
	})
	resp, raw := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"biztime-test"}`, string(raw))

	down := newTestEnv(t, func(d *apphttp.RouterDeps) {
		d.Ping = func(context.Context) error { return errors.New("connection refused") }
	})
	resp, raw = down.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, apphttp.CodeUnavailable, decodeError(t, raw).Error.Code)
}

func TestMetrics_ExponeContadores(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().List(gomock.Any()).Return(nil, nil)
	env.do(t, http.MethodGet, "/companies", "")

	resp, raw := env.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "biztime_http_requests_total")
	assert.Contains(t, string(raw), `method="GET",route="/companies`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_ListaVaciaEs200(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().List(gomock.Any()).Return(nil, nil)

	resp, raw := env.do(t, http.MethodGet, "/companies", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"companies":[]}`, string(raw))
}

func TestCompanies_CrearYConsultar(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	env.companies.EXPECT().GetByCode(gomock.Any(), "acme-corp").
		Return(&entity.Company{Code: "acme-corp", Name: "Acme Corp", Description: "Anvils"}, nil)
	env.invoices.EXPECT().ListIDsByCompany(gomock.Any(), "acme-corp").Return(nil, nil)
	env.industries.EXPECT().ListLabelsByCompany(gomock.Any(), "acme-corp").Return(nil, nil)

	resp, raw := env.do(t, http.MethodPost, "/companies", `{"name":"Acme Corp","description":"Anvils"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"company":{"code":"acme-corp","name":"Acme Corp","description":"Anvils"}}`, string(raw))

	resp, raw = env.do(t, http.MethodGet, "/companies/acme-corp", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"company":{"code":"acme-corp","name":"Acme Corp","description":"Anvils","invoices":[],"industries":[]}}`, string(raw))
}

func TestCompanies_Duplicada409(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.Conflict(domain.EntityCompany, "code", "acme-corp", "Company with code acme-corp already exists"))

	resp, raw := env.do(t, http.MethodPost, "/companies", `{"name":"Acme Corp"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeError(t, raw)
	assert.Equal(t, apphttp.CodeConflict, body.Error.Code)
	assert.Equal(t, "acme-corp", body.Error.Value)
	assert.Equal(t, "Company with code acme-corp already exists", body.Message)
}

func TestCompanies_CuerpoInvalido400(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/companies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, decodeError(t, raw).Error.Code)

	resp, raw = env.do(t, http.MethodPost, "/companies", `{"description":"sin nombre"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, raw)
	assert.Equal(t, "name", body.Error.Field)
	assert.Equal(t, "name is required", body.Message)
}

func TestCompanies_Inexistente404(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().GetByCode(gomock.Any(), "nope").Return(nil, nil)
	env.companies.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
	env.companies.EXPECT().Delete(gomock.Any(), "nope").Return(false, nil)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"name":"Nope"}`},
		{http.MethodDelete, ""},
	} {
		resp, raw := env.do(t, tc.method, "/companies/nope", tc.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.method)
		assert.Equal(t, "Company with code nope not found", decodeError(t, raw).Message, tc.method)
	}
}

func TestCompanies_ErrorInesperadoNoExponeCausa(t *testing.T) {
	env := newTestEnv(t)
	env.companies.EXPECT().List(gomock.Any()).
		Return(nil, domain.Unexpected("list companies", errors.New("password authentication failed")))

	resp, raw := env.do(t, http.MethodGet, "/companies", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(raw), "password")
	assert.Equal(t, apphttp.CodeInternal, decodeError(t, raw).Error.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_PagarFijaPaidDate(t *testing.T) {
	env := newTestEnv(t)
	addDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	env.invoices.EXPECT().GetByIDForUpdate(gomock.Any(), int64(1)).
		Return(&entity.Invoice{ID: 1, CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: addDate}, nil)
	env.invoices.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	resp, raw := env.do(t, http.MethodPut, "/invoices/1", `{"amt":500,"paid":true}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":500,"paid":true,"add_date":"2026-10-01","paid_date":"2026-10-17"}}`, string(raw))
}

func TestInvoices_IDNoNumerico400(t *testing.T) {
	env := newTestEnv(t)
	resp, raw := env.do(t, http.MethodGet, "/invoices/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, raw)
	assert.Equal(t, "id", body.Error.Field)
	assert.Equal(t, "abc", body.Error.Value)
}

func TestInvoices_CrearConEmpresaInexistente404(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.CompanyNotFound("nope"))

	resp, raw := env.do(t, http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Company with code nope not found", decodeError(t, raw).Message)
}

func TestInvoices_AmtNoPositivo400(t *testing.T) {
	env := newTestEnv(t)
	resp, raw := env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":-3}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "amt", decodeError(t, raw).Error.Field)
}

func TestInvoices_Borrar(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().Delete(gomock.Any(), int64(4)).Return(true, nil)

	resp, raw := env.do(t, http.MethodDelete, "/invoices/4", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"deleted"}`, string(raw))
}

func TestInvoices_PDFyXML(t *testing.T) {
	env := newTestEnv(t)
	inv := &entity.Invoice{ID: 1, CompCode: "apple", Amt: decimal.NewFromInt(100)}
	env.invoices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(inv, nil).Times(2)
	env.companies.EXPECT().GetByCode(gomock.Any(), "apple").Return(&entity.Company{Code: "apple"}, nil).Times(2)

	resp, raw := env.do(t, http.MethodGet, "/invoices/1/pdf", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))

	resp, _ = env.do(t, http.MethodGet, "/invoices/1/xml", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
}

// ──────────────────────────────────────────────────────────────────────────────
// Industries
// ──────────────────────────────────────────────────────────────────────────────

func TestIndustries_CrearAsociarDesasociar(t *testing.T) {
	env := newTestEnv(t)
	link := entity.CompanyIndustry{IndustryCode: "tech", CompanyCode: "apple"}
	env.industries.EXPECT().Create(gomock.Any(), &entity.Industry{Code: "tech", Label: "Tech"}).Return(nil)
	env.industries.EXPECT().Associate(gomock.Any(), link).Return(nil)
	env.industries.EXPECT().Disassociate(gomock.Any(), link).Return(true, nil)

	resp, raw := env.do(t, http.MethodPost, "/industries", `{"industry":"Tech"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"industry":{"code":"tech","industry":"Tech"}}`, string(raw))

	resp, raw = env.do(t, http.MethodPost, "/industries/tech/company", `{"company_code":"apple"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"industry_code":"tech"}`, string(raw))

	resp, raw = env.do(t, http.MethodDelete, "/industries/tech/company/apple", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Industry tech disassociated from company apple"}`, string(raw))
}

func TestIndustries_ListaVacia(t *testing.T) {
	env := newTestEnv(t)
	env.industries.EXPECT().List(gomock.Any()).Return([]*entity.Industry{}, nil)

	resp, raw := env.do(t, http.MethodGet, "/industries", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"industries":[]}`, string(raw))
}

func TestIndustries_AsociarIndustriaInexistente404(t *testing.T) {
	env := newTestEnv(t)
	env.industries.EXPECT().Associate(gomock.Any(), gomock.Any()).Return(domain.IndustryNotFound("nope"))

	resp, raw := env.do(t, http.MethodPost, "/industries/nope/company", `{"company_code":"apple"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.EntityIndustry, decodeError(t, raw).Error.Entity)
}

func TestIndustries_Borrar(t *testing.T) {
	env := newTestEnv(t)
	env.industries.EXPECT().Delete(gomock.Any(), "tech").Return(true, nil)

	resp, raw := env.do(t, http.MethodDelete, "/industries/tech", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Industry with code tech deleted"}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización con JWT activado
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LecturasPublicasEscriturasProtegidas(t *testing.T) {
	env := newTestEnv(t, func(d *apphttp.RouterDeps) { d.JWTSecret = testJWTSecret })
	env.companies.EXPECT().List(gomock.Any()).Return(nil, nil)
	env.companies.EXPECT().Delete(gomock.Any(), "apple").Return(true, nil)

	resp, _ := env.do(t, http.MethodGet, "/companies", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "lectura sin token")

	resp, _ = env.do(t, http.MethodPost, "/companies", `{"name":"Acme"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "escritura sin token")

	resp, _ = env.do(t, http.MethodDelete, "/companies/apple", "", "Authorization", tokenForRole(t, pkgjwt.RoleEditor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "editor no borra")

	resp, _ = env.do(t, http.MethodDelete, "/companies/apple", "", "Authorization", tokenForRole(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode, "admin borra")
}
