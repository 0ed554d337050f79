package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentCols = `id, invoice_id, customer_id, amount, method, reference, date, created_at`

// PaymentRepo implements the append-only payment ledger. No update, no delete.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the adapter.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create appends a payment row.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `INSERT INTO payments (` + paymentCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		p.ID, p.InvoiceID, p.CustomerID, p.Amount, p.Method, p.Reference, p.Date, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByInvoice returns an invoice's payments oldest first.
func (r *PaymentRepo) ListByInvoice(invoiceID int64) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentCols + ` FROM payments WHERE invoice_id = ? ORDER BY id`
	var list []*entity.Payment
	if err := sqlx.Select(r.q, &list, query, invoiceID); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}

// SumByInvoice recomputes amount paid from the full ledger. Summing decimal
// strings stays in Go so sqlite never does float arithmetic on money.
func (r *PaymentRepo) SumByInvoice(invoiceID int64) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	query := `SELECT amount FROM payments WHERE invoice_id = ?`
	if err := sqlx.Select(r.q, &amounts, query, invoiceID); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum, nil
}
