package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/scwellservice/fieldservice-api/internal/application/analytics"
	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
	infrapdf "github.com/scwellservice/fieldservice-api/internal/infrastructure/pdf"
	"github.com/scwellservice/fieldservice-api/internal/infrastructure/sqlite"
	httpRouter "github.com/scwellservice/fieldservice-api/internal/interfaces/http"
	"github.com/scwellservice/fieldservice-api/pkg/config"
	"github.com/scwellservice/fieldservice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("starting application")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	counterRepo := sqlite.NewCounterRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	jobRepo := sqlite.NewJobRepository(db)
	quoteRepo := sqlite.NewQuoteRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	teamRepo := sqlite.NewTeamRepository(db)
	requestRepo := sqlite.NewRequestRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	quoteUC := billing.NewQuoteUseCase(quoteRepo, customerRepo, settingsRepo, txRunner)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, paymentRepo, customerRepo, settingsRepo, txRunner)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, txRunner)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, paymentRepo, settingsRepo, pdfGenerator)

	customerUC := usecase.NewCustomerUseCase(customerRepo, jobRepo, invoiceRepo, counterRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, customerRepo, teamRepo, requestRepo, counterRepo)
	productUC := usecase.NewProductUseCase(productRepo, counterRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo, counterRepo)
	requestUC := usecase.NewRequestUseCase(requestRepo, customerRepo, counterRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	portalUC := usecase.NewPortalUseCase(customerRepo, jobRepo, quoteRepo, invoiceRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, jobRepo, invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Field Service API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		JobUC:       jobUC,
		ProductUC:   productUC,
		TeamUC:      teamUC,
		RequestUC:   requestUC,
		SettingsUC:  settingsUC,
		PortalUC:    portalUC,
		QuoteUC:     quoteUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
