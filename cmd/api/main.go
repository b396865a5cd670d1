package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/biztime-api/docs"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/biztime-api/internal/infrastructure/pdf"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// @title                       Biztime API
// @version                     1.0
// @description                 Empresas, facturas e industrias.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")
	}

	m := metrics.New()
	m.RegisterPool(pool)

	companyRepo := postgres.NewCompanyRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	industryRepo := postgres.NewIndustryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, invoiceRepo, industryRepo, m)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, txRunner, m)
	industryUC := usecase.NewIndustryUseCase(industryRepo, m)

	// PDF y XML UBL de la factura
	documentUC := usecase.NewInvoiceDocumentUseCase(
		invoiceRepo, companyRepo,
		infrapdf.NewMarotoPDFGenerator(),
		ubl.NewXMLBuilderService(cfg.App.Currency),
	)

	deps := httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		CompanyUC:  companyUC,
		InvoiceUC:  invoiceUC,
		IndustryUC: industryUC,
		DocumentUC: documentUC,
		Metrics:    m,
		Ping:       pool.Ping,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	}
	if cfg.App.DocsEnabled {
		if _, err := os.Stat(cfg.App.DocsFile); err == nil {
			deps.DocsFile = cfg.App.DocsFile
		} else {
			log.Warn().Str("file", cfg.App.DocsFile).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}
	app := httpRouter.NewApp(deps)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
