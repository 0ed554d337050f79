package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scwellservice/fieldservice-api/internal/application/analytics"
	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
	"github.com/scwellservice/fieldservice-api/internal/infrastructure/sqlite"
)

func TestDashboardSummary(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	counters := sqlite.NewCounterRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	jobRepo := sqlite.NewJobRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	customers := usecase.NewCustomerUseCase(customerRepo, jobRepo, invoiceRepo, counters)
	jobs := usecase.NewJobUseCase(jobRepo, customerRepo, sqlite.NewTeamRepository(db), sqlite.NewRequestRepository(db), counters)
	invoices := billing.NewInvoiceUseCase(invoiceRepo, paymentRepo, customerRepo, settingsRepo, txRunner)
	payments := billing.NewPaymentUseCase(paymentRepo, txRunner)
	dashboard := analytics.NewDashboardUseCase(sqlite.NewAnalyticsRepository(db), jobRepo, invoiceRepo)

	ctx := context.Background()
	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	nextWeek := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	_, err = jobs.Create(dto.CreateJobRequest{CustomerID: c.ID, Title: "Today's visit", ScheduledDate: today})
	require.NoError(t, err)
	_, err = jobs.Create(dto.CreateJobRequest{CustomerID: c.ID, Title: "Out of window", ScheduledDate: nextWeek})
	require.NoError(t, err)

	// One invoice left open, one fully paid this month.
	_, err = invoices.Create(ctx, dto.CreateInvoiceRequest{CustomerID: c.ID, Items: []dto.LineItemRequest{
		{Description: "Service call", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}})
	require.NoError(t, err)
	paid, err := invoices.Create(ctx, dto.CreateInvoiceRequest{CustomerID: c.ID, Items: []dto.LineItemRequest{
		{Description: "Pump swap", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(400)},
	}})
	require.NoError(t, err)
	_, err = payments.Apply(ctx, dto.CreatePaymentRequest{InvoiceID: paid.ID, Amount: decimal.RequireFromString("431")})
	require.NoError(t, err)

	summary, err := dashboard.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Stats.TotalCustomers)
	assert.Equal(t, 1, summary.Stats.JobsToday)
	assert.Equal(t, 1, summary.Stats.JobsThisWeek, "the ten-days-out job falls outside the rolling week")
	assert.Equal(t, 1, summary.Stats.PendingInvoices, "only the open invoice counts as pending")
	assert.True(t, summary.Stats.RevenueThisMonth.Equal(decimal.RequireFromString("431")),
		"revenue %s must cover only invoices paid this month", summary.Stats.RevenueThisMonth)

	require.Len(t, summary.TodaysJobs, 1)
	assert.Equal(t, "Today's visit", summary.TodaysJobs[0].Title)
}
