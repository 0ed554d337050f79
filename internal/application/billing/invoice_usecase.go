package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/pricing"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

const dueDateDays = 30 // default payment terms: net 30

// InvoiceUseCase covers invoice creation, updates and the send transition.
// Payments land exclusively through PaymentUseCase; writes here run inside
// the transaction runner so headers and item rows never commit separately.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	txRunner  TxRunner
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	txRunner TxRunner,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:  invoices,
		payments:  payments,
		customers: customers,
		settings:  settings,
		txRunner:  txRunner,
	}
}

// Create prices the items under the current tax rate and persists a draft
// invoice. The invoice number draws from its own sequence, independent of
// quote numbering. Due date defaults to creation date plus 30 days. The
// allocation and the row writes commit as one transaction.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	// Settings reads stay outside the transaction; the store runs on a
	// single pooled connection the open transaction holds.
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	totals := pricing.Compute(items, pricing.ParseRate(cfg.TaxRate))

	var inv *entity.Invoice
	err = uc.txRunner.Run(ctx, func(tx TxRepos) error {
		id, err := tx.Counters.Next("invoices")
		if err != nil {
			return err
		}
		seq, err := tx.Counters.Next("invoice_numbers")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		dueDate := in.DueDate
		if dueDate == "" {
			dueDate = now.AddDate(0, 0, dueDateDays).Format("2006-01-02")
		}
		inv = &entity.Invoice{
			ID:            id,
			InvoiceNumber: fmt.Sprintf("%s%04d", cfg.InvoicePrefix, seq),
			JobID:         in.JobID,
			CustomerID:    in.CustomerID,
			Status:        entity.InvoiceStatusDraft,
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			Total:         totals.Total,
			AmountPaid:    decimal.Zero,
			BalanceDue:    totals.Total,
			DueDate:       dueDate,
			Notes:         in.Notes,
			Items:         items,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return tx.Invoices.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByID loads one invoice with its items and full payment ledger.
func (uc *InvoiceUseCase) GetByID(id int64) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.payments.ListByInvoice(id)
	if err != nil {
		return nil, err
	}
	inv.Payments = payments
	return inv, nil
}

// List returns invoices newest first, optionally filtered by status and customer.
func (uc *InvoiceUseCase) List(status string, customerID int64) ([]*entity.Invoice, error) {
	return uc.invoices.List(repository.InvoiceFilter{Status: status, CustomerID: customerID})
}

// Update applies a partial update. A supplied item list replaces the stored
// one and recomputes totals under the current tax rate; the balance state is
// then reconciled against the payment ledger, read inside the same
// transaction, so a concurrently landing payment can never be overwritten
// with a stale amount_paid.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	var (
		items        []entity.LineItem
		totals       pricing.Totals
		replaceItems bool
	)
	if in.Items != nil {
		var err error
		items, err = buildItems(*in.Items)
		if err != nil {
			return nil, err
		}
		cfg, err := uc.settings.Get()
		if err != nil {
			return nil, err
		}
		totals = pricing.Compute(items, pricing.ParseRate(cfg.TaxRate))
		replaceItems = true
	}

	var inv *entity.Invoice
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		var err error
		inv, err = tx.Invoices.GetByID(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}

		if in.JobID != nil {
			inv.JobID = in.JobID
		}
		if in.DueDate != nil {
			inv.DueDate = *in.DueDate
		}
		if in.Notes != nil {
			inv.Notes = *in.Notes
		}
		if replaceItems {
			inv.Items = items
			inv.Subtotal = totals.Subtotal
			inv.Tax = totals.Tax
			inv.Total = totals.Total

			paid, err := tx.Payments.SumByInvoice(id)
			if err != nil {
				return err
			}
			reconcile(inv, paid, time.Now().UTC())
		}

		inv.UpdatedAt = time.Now().UTC()
		return tx.Invoices.Update(inv, replaceItems)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Send marks the invoice sent and stamps sent_at. Repeated sends simply
// overwrite the stamp; there is no guard against re-sending a paid invoice.
func (uc *InvoiceUseCase) Send(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv *entity.Invoice
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		var err error
		inv, err = tx.Invoices.GetByID(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		now := time.Now().UTC()
		inv.Status = entity.InvoiceStatusSent
		inv.SentAt = &now
		inv.UpdatedAt = now
		return tx.Invoices.Update(inv, false)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}
