package sqlite_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/infrastructure/sqlite"
)

// openTestDB opens a throwaway in-memory store with the schema applied and
// the settings row seeded.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err, "in-memory store must open")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCounterNext_MonotonicPerName(t *testing.T) {
	db := openTestDB(t)
	counters := sqlite.NewCounterRepository(db)

	for want := int64(1); want <= 5; want++ {
		got, err := counters.Next("quotes")
		require.NoError(t, err)
		assert.Equal(t, want, got, "counter must increment by exactly one")
	}
}

func TestCounterNext_NamesAreIndependent(t *testing.T) {
	db := openTestDB(t)
	counters := sqlite.NewCounterRepository(db)

	q1, err := counters.Next("quote_numbers")
	require.NoError(t, err)
	i1, err := counters.Next("invoice_numbers")
	require.NoError(t, err)
	q2, err := counters.Next("quote_numbers")
	require.NoError(t, err)

	assert.Equal(t, int64(1), q1)
	assert.Equal(t, int64(1), i1, "invoice sequence must not be moved by quote allocations")
	assert.Equal(t, int64(2), q2)
}

func TestSettings_SeededDefaults(t *testing.T) {
	db := openTestDB(t)
	settings := sqlite.NewSettingsRepository(db)

	s, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "Southern California Well Service", s.CompanyName)
	assert.Equal(t, "7.75", s.TaxRate)
	assert.Equal(t, "SCWS-INV-", s.InvoicePrefix)
	assert.Equal(t, "SCWS-QTE-", s.QuotePrefix)
}

func TestSettings_UpdateKeepsSingleton(t *testing.T) {
	db := openTestDB(t)
	settings := sqlite.NewSettingsRepository(db)

	s, err := settings.Get()
	require.NoError(t, err)
	s.TaxRate = "8.25"
	require.NoError(t, settings.Update(s))

	again, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "8.25", again.TaxRate)
	assert.Equal(t, "Southern California Well Service", again.CompanyName, "untouched fields survive the update")
}

func TestCustomerRepo_PortalTokenLookup(t *testing.T) {
	db := openTestDB(t)
	customers := sqlite.NewCustomerRepository(db)

	now := time.Now().UTC()
	c := &entity.Customer{
		ID:          1,
		Name:        "Hilltop Ranch",
		Phone:       "(760) 555-0101",
		City:        "Ramona",
		PortalToken: "tok-hilltop",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, customers.Create(c))

	found, err := customers.GetByPortalToken("tok-hilltop")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)

	missing, err := customers.GetByPortalToken("tok-nobody")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown token reads as absent, not as an error")
}

func TestCustomerRepo_SearchIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	customers := sqlite.NewCustomerRepository(db)

	now := time.Now().UTC()
	require.NoError(t, customers.Create(&entity.Customer{ID: 1, Name: "Hilltop Ranch", City: "Ramona", PortalToken: "t1", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, customers.Create(&entity.Customer{ID: 2, Name: "Valley Farms", City: "Julian", PortalToken: "t2", CreatedAt: now, UpdatedAt: now}))

	got, err := customers.List("hillTOP")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hilltop Ranch", got[0].Name)

	byCity, err := customers.List("ramona")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, int64(1), byCity[0].ID)
}

func TestPaymentRepo_SumFromFullLedger(t *testing.T) {
	db := openTestDB(t)
	payments := sqlite.NewPaymentRepository(db)

	now := time.Now().UTC()
	require.NoError(t, payments.Create(&entity.Payment{ID: 1, InvoiceID: 7, CustomerID: 1, Amount: decimal.RequireFromString("50.00"), Date: "2026-08-01", CreatedAt: now}))
	require.NoError(t, payments.Create(&entity.Payment{ID: 2, InvoiceID: 7, CustomerID: 1, Amount: decimal.RequireFromString("57.75"), Date: "2026-08-02", CreatedAt: now}))
	require.NoError(t, payments.Create(&entity.Payment{ID: 3, InvoiceID: 8, CustomerID: 1, Amount: decimal.RequireFromString("10.00"), Date: "2026-08-02", CreatedAt: now}))

	sum, err := payments.SumByInvoice(7)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("107.75")), "sum covers only the invoice's own ledger, got %s", sum)

	ledger, err := payments.ListByInvoice(7)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, int64(1), ledger[0].ID, "ledger reads oldest first")
}

func TestQuoteRepo_ItemsKeepOrder(t *testing.T) {
	db := openTestDB(t)
	quotes := sqlite.NewQuoteRepository(db)

	now := time.Now().UTC()
	q := &entity.Quote{
		ID:          1,
		QuoteNumber: "SCWS-QTE-0001",
		CustomerID:  1,
		Status:      entity.QuoteStatusDraft,
		Subtotal:    decimal.RequireFromString("100"),
		Tax:         decimal.RequireFromString("7.75"),
		Total:       decimal.RequireFromString("107.75"),
		Items: []entity.LineItem{
			{Description: "Pull pump", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(60), LineTotal: decimal.NewFromInt(60)},
			{Description: "Labor", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(20), LineTotal: decimal.NewFromInt(40)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, quotes.Create(q))

	loaded, err := quotes.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Pull pump", loaded.Items[0].Description)
	assert.Equal(t, "Labor", loaded.Items[1].Description)
}
