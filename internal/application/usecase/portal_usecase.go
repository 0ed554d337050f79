package usecase

import (
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// PortalUseCase serves the customer-facing read-only portal. The portal token
// is the whole credential: an unknown token just reads as not found, there is
// no way to enumerate customers from here.
type PortalUseCase struct {
	customers repository.CustomerRepository
	jobs      repository.JobRepository
	quotes    repository.QuoteRepository
	invoices  repository.InvoiceRepository
}

func NewPortalUseCase(
	customers repository.CustomerRepository,
	jobs repository.JobRepository,
	quotes repository.QuoteRepository,
	invoices repository.InvoiceRepository,
) *PortalUseCase {
	return &PortalUseCase{customers: customers, jobs: jobs, quotes: quotes, invoices: invoices}
}

// ByToken resolves the token to a customer and collects their records.
func (uc *PortalUseCase) ByToken(token string) (*dto.PortalView, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByPortalToken(token)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	jobs, err := uc.jobs.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	quotes, err := uc.quotes.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PortalView{Customer: customer, Jobs: jobs, Quotes: quotes, Invoices: invoices}, nil
}
