package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// PaymentUseCase appends payments to the ledger and reconciles the parent
// invoice. The amount paid is always recomputed from the full ledger, never
// incremented, so the invoice state stays consistent no matter how payments
// arrive.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	txRunner TxRunner
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(payments repository.PaymentRepository, txRunner TxRunner) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, txRunner: txRunner}
}

// Apply records a payment against an invoice and updates the invoice's
// amount_paid, balance_due, status and paid_at, all in one transaction.
// A non-positive amount is rejected before anything is written.
func (uc *PaymentUseCase) Apply(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	if in.InvoiceID == 0 || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var payment *entity.Payment
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		inv, err := tx.Invoices.GetByID(in.InvoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}

		id, err := tx.Counters.Next("payments")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		date := in.Date
		if date == "" {
			date = now.Format("2006-01-02")
		}
		payment = &entity.Payment{
			ID:         id,
			InvoiceID:  inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     in.Amount,
			Method:     in.Method,
			Reference:  in.Reference,
			Date:       date,
			CreatedAt:  now,
		}
		if err := tx.Payments.Create(payment); err != nil {
			return err
		}

		paid, err := tx.Payments.SumByInvoice(inv.ID)
		if err != nil {
			return err
		}
		reconcile(inv, paid, now)
		inv.UpdatedAt = now
		return tx.Invoices.Update(inv, false)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ListByInvoice returns an invoice's ledger oldest first.
func (uc *PaymentUseCase) ListByInvoice(invoiceID int64) ([]*entity.Payment, error) {
	return uc.payments.ListByInvoice(invoiceID)
}

// reconcile sets the invoice balance state from a freshly recomputed amount
// paid: paid when the balance reaches zero (stamping paid_at only on the
// transition into paid), partial while something is owed, untouched status
// while the ledger is empty. paid_at holds only while the invoice is paid;
// an item edit that raises the total past the ledger clears it again.
func reconcile(inv *entity.Invoice, paid decimal.Decimal, now time.Time) {
	inv.AmountPaid = paid
	inv.BalanceDue = inv.Total.Sub(paid)

	switch {
	case paid.IsZero():
		// No payments: draft/sent state stays as it is.
	case inv.BalanceDue.LessThanOrEqual(decimal.Zero):
		if inv.Status != entity.InvoiceStatusPaid || inv.PaidAt == nil {
			inv.PaidAt = &now
		}
		inv.Status = entity.InvoiceStatusPaid
	default:
		inv.Status = entity.InvoiceStatusPartial
		inv.PaidAt = nil
	}
}
