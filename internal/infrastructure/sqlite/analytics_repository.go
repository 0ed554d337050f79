package sqlite

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only dashboard queries.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountCustomers returns the total number of customers.
func (r *AnalyticsRepo) CountCustomers() (int, error) {
	var n int
	if err := sqlx.Get(r.q, &n, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// RevenuePaidSince sums the totals of paid invoices with paid_at >= since.
// The decimal sum happens in Go; sqlite only selects the rows.
func (r *AnalyticsRepo) RevenuePaidSince(since time.Time) (decimal.Decimal, error) {
	var totals []decimal.Decimal
	query := `SELECT total FROM invoices WHERE status = 'paid' AND paid_at IS NOT NULL AND paid_at >= ?`
	if err := sqlx.Select(r.q, &totals, query, since); err != nil {
		return decimal.Zero, fmt.Errorf("sum paid revenue: %w", err)
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}
