package http

import (
	"context"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/infrastructure/metrics"
	"github.com/jhoicas/biztime-api/pkg/jwt"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// WelcomeMessage cuerpo de GET /.
const WelcomeMessage = "Welcome to Biztime!"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	IndustryUC *usecase.IndustryUseCase
	DocumentUC *usecase.InvoiceDocumentUseCase
	Metrics    *metrics.Metrics            // nil: sin /metrics
	Ping       func(context.Context) error // nil: /health no consulta la base
	JWTSecret  string                      // vacío: API abierta
	DocsFile   string                      // vacío: sin /docs
	Log        *logger.Logger
}

// NewApp construye la aplicación Fiber con el manejador de errores, los
// middlewares y todas las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		ErrorHandler:          ErrorHandler(deps.Log),
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(RequestID())
	app.Use(Observe(deps.Log.Component("http"), deps.Metrics))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	if deps.DocsFile != "" {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.DocsFile,
			Path:     "docs",
			Title:    "Biztime API",
		}))
	}

	Router(app, deps)
	app.Use(NotFound)
	return app
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con
// rol admin o editor y borrados solo admin cuando hay JWTSecret.
func Router(app *fiber.App, deps RouterDeps) {
	secret := deps.JWTSecret
	write := func(h fiber.Handler) []fiber.Handler { return secured(secret, h, jwt.RoleAdmin, jwt.RoleEditor) }
	remove := func(h fiber.Handler) []fiber.Handler { return secured(secret, h, jwt.RoleAdmin) }

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(WelcomeMessage) })
	app.Get("/health", healthHandler(deps))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// Companies
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", write(companyHandler.Create)...)
	companies.Get("/:code", companyHandler.Get)
	companies.Put("/:code", write(companyHandler.Update)...)
	companies.Delete("/:code", remove(companyHandler.Delete)...)

	// Invoices
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", write(invoiceHandler.Create)...)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", write(invoiceHandler.Update)...)
	invoices.Delete("/:id", remove(invoiceHandler.Delete)...)
	if deps.DocumentUC != nil {
		invoices.Get("/:id/pdf", invoiceHandler.PDF)
		invoices.Get("/:id/xml", invoiceHandler.XML)
	}

	// Industries
	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", write(industryHandler.Create)...)
	industries.Post("/:code/company", write(industryHandler.Associate)...)
	industries.Delete("/:industry_code/company/:company_code", remove(industryHandler.Disassociate)...)
	industries.Delete("/:code", remove(industryHandler.Delete)...)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				deps.Log.Warn().Err(err).Msg("health: base de datos no disponible")
				return respondError(c, fiber.StatusServiceUnavailable, CodeUnavailable, "database unavailable")
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}
