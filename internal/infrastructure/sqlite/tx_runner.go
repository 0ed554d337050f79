package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/application/billing"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one SQLite transaction with tx-bound
// repositories. This is the mutual-exclusion boundary around identifier
// allocation and payment reconciliation.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner builds the runner on the shared handle.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run begins a transaction, executes fn with repositories bound to it, then
// commits, or rolls back when fn fails.
func (r *TxRunner) Run(ctx context.Context, fn func(tx billing.TxRepos) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := billing.TxRepos{
		Counters: NewCounterRepository(tx),
		Quotes:   NewQuoteRepository(tx),
		Invoices: NewInvoiceRepository(tx),
		Payments: NewPaymentRepository(tx),
		Jobs:     NewJobRepository(tx),
		Team:     NewTeamRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
