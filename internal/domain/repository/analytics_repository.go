package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository defines the read-only queries behind the dashboard.
// Implementations never modify data.
type AnalyticsRepository interface {
	CountCustomers() (int, error)
	// RevenuePaidSince sums the totals of paid invoices whose paid_at is at
	// or after the given instant.
	RevenuePaidSince(since time.Time) (decimal.Decimal, error)
}
