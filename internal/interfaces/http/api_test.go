package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scwellservice/fieldservice-api/internal/application/analytics"
	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
	infrapdf "github.com/scwellservice/fieldservice-api/internal/infrastructure/pdf"
	"github.com/scwellservice/fieldservice-api/internal/infrastructure/sqlite"
	apphttp "github.com/scwellservice/fieldservice-api/internal/interfaces/http"
)

// buildTestApp wires the whole API over an in-memory store, mirroring the
// production wiring in cmd/api.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	counters := sqlite.NewCounterRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	jobRepo := sqlite.NewJobRepository(db)
	quoteRepo := sqlite.NewQuoteRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	teamRepo := sqlite.NewTeamRepository(db)
	requestRepo := sqlite.NewRequestRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo, jobRepo, invoiceRepo, counters),
		JobUC:       usecase.NewJobUseCase(jobRepo, customerRepo, teamRepo, requestRepo, counters),
		ProductUC:   usecase.NewProductUseCase(productRepo, counters),
		TeamUC:      usecase.NewTeamUseCase(teamRepo, counters),
		RequestUC:   usecase.NewRequestUseCase(requestRepo, customerRepo, counters),
		SettingsUC:  usecase.NewSettingsUseCase(settingsRepo),
		PortalUC:    usecase.NewPortalUseCase(customerRepo, jobRepo, quoteRepo, invoiceRepo),
		QuoteUC:     billing.NewQuoteUseCase(quoteRepo, customerRepo, settingsRepo, txRunner),
		InvoiceUC:   billing.NewInvoiceUseCase(invoiceRepo, paymentRepo, customerRepo, settingsRepo, txRunner),
		PaymentUC:   billing.NewPaymentUseCase(paymentRepo, txRunner),
		InvoicePDF:  billing.NewPDFUseCase(invoiceRepo, paymentRepo, settingsRepo, infrapdf.NewMarotoPDFGenerator()),
		DashboardUC: analytics.NewDashboardUseCase(sqlite.NewAnalyticsRepository(db), jobRepo, invoiceRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	if resp.Header.Get("Content-Type") != "" && resp.ContentLength != 0 {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestAPI_CustomerLifecycle(t *testing.T) {
	app := buildTestApp(t)

	resp, created := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"name": "Hilltop Ranch", "phone": "(760) 555-0101",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, created["portal_token"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, detail := doJSON(t, app, http.MethodGet, "/api/customers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, detail["customer"])

	resp, body := doJSON(t, app, http.MethodGet, "/api/customers/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestAPI_InvoicePaymentFlow(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "Hilltop Ranch"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, inv := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": 1,
		"items": []map[string]any{
			{"description": "Well inspection", "quantity": 2, "unit_price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SCWS-INV-0001", inv["invoice_number"])
	assert.Equal(t, "draft", inv["status"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/invoices/1/send", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/payments", map[string]any{
		"invoice_id": 1, "amount": 50, "method": "check",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, after := doJSON(t, app, http.MethodGet, "/api/invoices/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "partial", after["status"])
	assert.Equal(t, "57.75", after["balance_due"])

	// Non-positive amounts are rejected before the ledger is touched.
	resp, body := doJSON(t, app, http.MethodPost, "/api/payments", map[string]any{
		"invoice_id": 1, "amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAPI_QuoteConvertConflict(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "Hilltop Ranch"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, quote := doJSON(t, app, http.MethodPost, "/api/quotes", map[string]any{
		"customer_id": 1,
		"items": []map[string]any{
			{"description": "Pump replacement", "quantity": 1, "unit_price": 1200},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SCWS-QTE-0001", quote["quote_number"])

	resp, converted := doJSON(t, app, http.MethodPost, "/api/quotes/1/convert", map[string]any{
		"scheduled_date": "2026-09-15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, converted["job_id"])

	resp, body := doJSON(t, app, http.MethodPost, "/api/quotes/1/convert", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestAPI_PortalAndSettings(t *testing.T) {
	app := buildTestApp(t)

	resp, created := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "Hilltop Ranch"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := created["portal_token"].(string)
	require.NotEmpty(t, token)

	resp, view := doJSON(t, app, http.MethodGet, "/api/portal/"+token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, view["customer"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/portal/not-a-token", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, settings := doJSON(t, app, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Southern California Well Service", settings["company_name"])

	resp, updated := doJSON(t, app, http.MethodPut, "/api/settings", map[string]any{"tax_rate": "8.25"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "8.25", updated["tax_rate"])
	assert.Equal(t, "Southern California Well Service", updated["company_name"])
}

func TestAPI_MalformedBody(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestAPI_InvoicePDFDownload(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "Hilltop Ranch"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": 1,
		"items": []map[string]any{
			{"description": "Well inspection", "quantity": 2, "unit_price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/1/pdf", nil)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, pdfResp.Header.Get(fiber.HeaderContentDisposition), fmt.Sprintf("invoice-%d.pdf", 1))
}
