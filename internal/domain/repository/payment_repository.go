package repository

import (
	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
)

// PaymentRepository defines the persistence port for the append-only payment
// ledger. There is no update or delete: a wrong payment is corrected by the
// bookkeeper with a compensating entry, never by rewriting history.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByInvoice(invoiceID int64) ([]*entity.Payment, error)
	// SumByInvoice recomputes the amount paid from the full ledger. Invoice
	// reconciliation always goes through this, never through increments.
	SumByInvoice(invoiceID int64) (decimal.Decimal, error)
}
