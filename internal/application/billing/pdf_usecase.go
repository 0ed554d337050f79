package billing

import (
	"context"

	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// PDFUseCase renders a printable invoice document.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	payments  repository.PaymentRepository
	settings  repository.SettingsRepository
	generator InvoicePDFGenerator
}

func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	settings repository.SettingsRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, payments: payments, settings: settings, generator: generator}
}

// Render produces the PDF bytes for an invoice, with the company block taken
// from the current settings.
func (uc *PDFUseCase) Render(ctx context.Context, invoiceID int64) ([]byte, error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Payments, err = uc.payments.ListByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, cfg)
}
