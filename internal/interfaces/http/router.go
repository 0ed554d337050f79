// Package http wires the Fiber handlers to the application use cases.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/analytics"
	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	JobUC       *usecase.JobUseCase
	ProductUC   *usecase.ProductUseCase
	TeamUC      *usecase.TeamUseCase
	RequestUC   *usecase.RequestUseCase
	SettingsUC  *usecase.SettingsUseCase
	PortalUC    *usecase.PortalUseCase
	QuoteUC     *billing.QuoteUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PaymentUC   *billing.PaymentUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	jobs := api.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Delete("/:id", jobHandler.Delete)

	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Post("/:id/convert", quoteHandler.Convert)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/payments", paymentHandler.ListByInvoice)

	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	team := api.Group("/team")
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Post("/", teamHandler.Create)
	team.Get("/", teamHandler.List)
	team.Get("/:id", teamHandler.GetByID)
	team.Put("/:id", teamHandler.Update)
	team.Delete("/:id", teamHandler.Delete)

	requests := api.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id", requestHandler.Update)
	requests.Delete("/:id", requestHandler.Delete)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	portalHandler := NewPortalHandler(deps.PortalUC)
	api.Get("/portal/:token", portalHandler.ByToken)
}
