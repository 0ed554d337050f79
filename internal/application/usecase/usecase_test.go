package usecase_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func customerUC(db *sqlx.DB) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(
		sqlite.NewCustomerRepository(db),
		sqlite.NewJobRepository(db),
		sqlite.NewInvoiceRepository(db),
		sqlite.NewCounterRepository(db),
	)
}

func jobUC(db *sqlx.DB) *usecase.JobUseCase {
	return usecase.NewJobUseCase(
		sqlite.NewJobRepository(db),
		sqlite.NewCustomerRepository(db),
		sqlite.NewTeamRepository(db),
		sqlite.NewRequestRepository(db),
		sqlite.NewCounterRepository(db),
	)
}

func TestCustomerCreate_MintsPortalToken(t *testing.T) {
	db := openDB(t)
	uc := customerUC(db)

	a, err := uc.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCustomerRequest{Name: "Valley Farms"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.PortalToken)
	assert.NotEqual(t, a.PortalToken, b.PortalToken)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestCustomerCreate_RequiresName(t *testing.T) {
	db := openDB(t)
	uc := customerUC(db)

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerGetByID_EmbedsHistory(t *testing.T) {
	db := openDB(t)
	customers := customerUC(db)
	jobs := jobUC(db)

	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)
	_, err = jobs.Create(dto.CreateJobRequest{CustomerID: c.ID, Title: "Annual service", ScheduledDate: "2026-09-01"})
	require.NoError(t, err)

	detail, err := customers.GetByID(c.ID)
	require.NoError(t, err)
	require.Len(t, detail.Jobs, 1)
	assert.Empty(t, detail.Invoices)

	_, err = customers.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobCreate_ValidatesReferences(t *testing.T) {
	db := openDB(t)
	customers := customerUC(db)
	jobs := jobUC(db)

	_, err := jobs.Create(dto.CreateJobRequest{CustomerID: 42})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown customer is rejected")

	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)

	ghost := int64(7)
	_, err = jobs.Create(dto.CreateJobRequest{CustomerID: c.ID, AssignedTo: &ghost})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown assignee is rejected")

	job, err := jobs.Create(dto.CreateJobRequest{CustomerID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusScheduled, job.Status, "status defaults to scheduled")
}

func TestJobComplete_StampsCompletedAtOnce(t *testing.T) {
	db := openDB(t)
	customers := customerUC(db)
	jobs := jobUC(db)

	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)
	job, err := jobs.Create(dto.CreateJobRequest{CustomerID: c.ID})
	require.NoError(t, err)

	completed := entity.JobStatusCompleted
	done, err := jobs.Update(job.ID, dto.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	// Reopen and complete again: the original stamp survives.
	inProgress := entity.JobStatusInProgress
	_, err = jobs.Update(job.ID, dto.UpdateJobRequest{Status: &inProgress})
	require.NoError(t, err)
	again, err := jobs.Update(job.ID, dto.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, again.CompletedAt.Equal(first), "completed_at is stamped on the first completion only")
}

func TestJobCreate_MarksSourceRequestScheduled(t *testing.T) {
	db := openDB(t)
	customers := customerUC(db)
	jobs := jobUC(db)
	requests := usecase.NewRequestUseCase(
		sqlite.NewRequestRepository(db),
		sqlite.NewCustomerRepository(db),
		sqlite.NewCounterRepository(db),
	)

	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)
	req, err := requests.Create(dto.CreateRequestRequest{CustomerID: c.ID, Title: "Low water pressure"})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusNew, req.Status)

	_, err = jobs.Create(dto.CreateJobRequest{CustomerID: c.ID, RequestID: &req.ID})
	require.NoError(t, err)

	after, err := requests.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusScheduled, after.Status)
}

func TestProductCreate_TaxableByDefault(t *testing.T) {
	db := openDB(t)
	uc := usecase.NewProductUseCase(sqlite.NewProductRepository(db), sqlite.NewCounterRepository(db))

	p, err := uc.Create(dto.CreateProductRequest{Name: "Pressure tank", Price: decimal.NewFromInt(850)})
	require.NoError(t, err)
	assert.True(t, p.IsTaxable)

	no := false
	exempt, err := uc.Create(dto.CreateProductRequest{Name: "Permit fee", Price: decimal.NewFromInt(120), IsTaxable: &no})
	require.NoError(t, err)
	assert.False(t, exempt.IsTaxable)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Bad", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsUpdate_PartialMerge(t *testing.T) {
	db := openDB(t)
	uc := usecase.NewSettingsUseCase(sqlite.NewSettingsRepository(db))

	rate := "8.25"
	updated, err := uc.Update(dto.UpdateSettingsRequest{TaxRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "8.25", updated.TaxRate)
	assert.Equal(t, "Southern California Well Service", updated.CompanyName, "unnamed fields keep their values")
}

func TestPortal_ByToken(t *testing.T) {
	db := openDB(t)
	customers := customerUC(db)
	portal := usecase.NewPortalUseCase(
		sqlite.NewCustomerRepository(db),
		sqlite.NewJobRepository(db),
		sqlite.NewQuoteRepository(db),
		sqlite.NewInvoiceRepository(db),
	)

	c, err := customers.Create(dto.CreateCustomerRequest{Name: "Hilltop Ranch"})
	require.NoError(t, err)

	view, err := portal.ByToken(c.PortalToken)
	require.NoError(t, err)
	assert.Equal(t, c.ID, view.Customer.ID)
	assert.Empty(t, view.Jobs)
	assert.Empty(t, view.Quotes)
	assert.Empty(t, view.Invoices)

	_, err = portal.ByToken("no-such-token")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = portal.ByToken("")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
