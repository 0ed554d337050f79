// Package billing holds the use cases for the quote -> job -> invoice ->
// payment lifecycle.
package billing

import (
	"context"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// TxRepos is the set of repositories bound to one transaction. Sequences
// that must not interleave (identifier allocation plus the record write,
// payment insertion plus the invoice reconcile) run against these.
type TxRepos struct {
	Counters repository.CounterRepository
	Quotes   repository.QuoteRepository
	Invoices repository.InvoiceRepository
	Payments repository.PaymentRepository
	Jobs     repository.JobRepository
	Team     repository.TeamMemberRepository
}

// TxRunner executes a callback inside one storage transaction.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}

// InvoicePDFGenerator renders an invoice (with items, payments and joined
// customer fields loaded) into PDF bytes.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, settings *entity.Settings) ([]byte, error)
}
