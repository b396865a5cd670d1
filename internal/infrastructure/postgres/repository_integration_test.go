//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
)

// newTestPool levanta un PostgreSQL efímero, aplica las migraciones y devuelve el pool.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("biztime_test"),
		tcpostgres.WithUsername("biztime"),
		tcpostgres.WithPassword("biztime"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "iniciar contenedor postgres")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: connStr, MaxConns: 5})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, applied)
	return pool
}

func TestMigrate_Idempotente(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, applied, "la segunda ejecución no aplica nada")

	require.NoError(t, postgres.Seed(ctx, pool))
	require.NoError(t, postgres.Seed(ctx, pool))

	list, err := postgres.NewInvoiceRepository(pool).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4, "el seed no duplica facturas")
}

func TestCompanyRepo_CRUD(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := postgres.NewCompanyRepository(pool)

	require.NoError(t, repo.Create(ctx, &entity.Company{Code: "acme-corp", Name: "Acme Corp", Description: "Anvils"}))

	err := repo.Create(ctx, &entity.Company{Code: "acme-corp", Name: "Acme Corp 2"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "Company with code acme-corp already exists")

	err = repo.Create(ctx, &entity.Company{Code: "acme", Name: "Acme Corp"})
	assert.ErrorIs(t, err, domain.ErrConflict, "nombre repetido")

	got, err := repo.GetByCode(ctx, "acme-corp")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Anvils", got.Description)

	missing, err := repo.GetByCode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := repo.Update(ctx, &entity.Company{Code: "acme-corp", Name: "Acme Inc", Description: "Rockets"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Acme Inc", updated.Name)

	updated, err = repo.Update(ctx, &entity.Company{Code: "nope", Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, "acme-corp")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "acme-corp")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInvoiceRepo_ReferenciasYChecks(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	require.NoError(t, postgres.Seed(ctx, pool))
	repo := postgres.NewInvoiceRepository(pool)

	inv := &entity.Invoice{CompCode: "apple", Amt: decimal.RequireFromString("123.45")}
	require.NoError(t, repo.Create(ctx, inv))
	assert.NotZero(t, inv.ID)
	assert.False(t, inv.AddDate.IsZero())

	err := repo.Create(ctx, &entity.Invoice{CompCode: "nope", Amt: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Company with code nope not found")

	err = repo.Create(ctx, &entity.Invoice{CompCode: "apple", Amt: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ids, err := repo.ListIDsByCompany(ctx, "apple")
	require.NoError(t, err)
	assert.Len(t, ids, 4)
	assert.IsIncreasing(t, ids)
}

func TestDeleteCompany_CascadaFacturasYAsociaciones(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	require.NoError(t, postgres.Seed(ctx, pool))

	deleted, err := postgres.NewCompanyRepository(pool).Delete(ctx, "apple")
	require.NoError(t, err)
	require.True(t, deleted)

	ids, err := postgres.NewInvoiceRepository(pool).ListIDsByCompany(ctx, "apple")
	require.NoError(t, err)
	assert.Empty(t, ids)

	industries, err := postgres.NewIndustryRepository(pool).List(ctx)
	require.NoError(t, err)
	for _, ind := range industries {
		assert.NotContains(t, ind.CompanyCodes, "apple")
	}
}

func TestIndustryRepo_Asociaciones(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	require.NoError(t, postgres.Seed(ctx, pool))
	repo := postgres.NewIndustryRepository(pool)

	require.NoError(t, repo.Create(ctx, &entity.Industry{Code: "mining", Label: "Mining"}))
	err := repo.Create(ctx, &entity.Industry{Code: "mining", Label: "Mining 2"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	byCode := map[string]*entity.Industry{}
	for _, ind := range list {
		byCode[ind.Code] = ind
	}
	assert.Equal(t, []string{"apple", "ibm"}, byCode["tech"].CompanyCodes)
	assert.NotNil(t, byCode["mining"].CompanyCodes)
	assert.Empty(t, byCode["mining"].CompanyCodes)

	link := entity.CompanyIndustry{IndustryCode: "mining", CompanyCode: "ibm"}
	require.NoError(t, repo.Associate(ctx, link))
	assert.ErrorIs(t, repo.Associate(ctx, link), domain.ErrConflict)

	err = repo.Associate(ctx, entity.CompanyIndustry{IndustryCode: "nope", CompanyCode: "ibm"})
	assert.EqualError(t, err, "Industry with code nope not found")
	err = repo.Associate(ctx, entity.CompanyIndustry{IndustryCode: "mining", CompanyCode: "nope"})
	assert.EqualError(t, err, "Company with code nope not found")

	labels, err := repo.ListLabelsByCompany(ctx, "ibm")
	require.NoError(t, err)
	assert.Contains(t, labels, "Mining")

	removed, err := repo.Disassociate(ctx, link)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Disassociate(ctx, link)
	require.NoError(t, err)
	assert.False(t, removed)

	deleted, err := repo.Delete(ctx, "mining")
	require.NoError(t, err)
	assert.True(t, deleted)
}

// Pagos concurrentes sobre la misma factura: el bloqueo de fila garantiza que
// solo una transacción observa la transición false -> true.
func TestInvoiceUpdate_ConcurrenteSobreMismaFactura(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	require.NoError(t, postgres.Seed(ctx, pool))

	repo := postgres.NewInvoiceRepository(pool)
	inv := &entity.Invoice{CompCode: "ibm", Amt: decimal.NewFromInt(50)}
	require.NoError(t, repo.Create(ctx, inv))

	events := &countingRecorder{}
	uc := usecase.NewInvoiceUseCase(repo, postgres.NewTxRunner(pool), events)

	paid := true
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Update(ctx, inv.ID, dto.UpdateInvoiceRequest{Amt: decimal.NewFromInt(75), Paid: &paid})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, events.payments(), "una sola transición de pago")

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, entity.DateOf(time.Now()), *got.PaidDate)
}

type countingRecorder struct {
	mu sync.Mutex
	n  int
}

func (r *countingRecorder) EntityCreated(string) {}
func (r *countingRecorder) EntityDeleted(string) {}
func (r *countingRecorder) InvoicePaymentChanged(bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.n++
}

func (r *countingRecorder) payments() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}
