package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// CustomerUseCase manages the customer roster. Every customer gets an opaque
// portal token at creation; the token is the only credential the read-only
// portal accepts.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	jobs      repository.JobRepository
	invoices  repository.InvoiceRepository
	counters  repository.CounterRepository
}

func NewCustomerUseCase(
	customers repository.CustomerRepository,
	jobs repository.JobRepository,
	invoices repository.InvoiceRepository,
	counters repository.CounterRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, jobs: jobs, invoices: invoices, counters: counters}
}

// Create registers a customer. Name is the only required field.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.counters.Next("customers")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Zip:         in.Zip,
		Notes:       in.Notes,
		PortalToken: uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID returns the customer with their job and invoice history attached.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerDetail, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	jobs, err := uc.jobs.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerDetail{Customer: customer, Jobs: jobs, Invoices: invoices}, nil
}

// List returns customers sorted by name, optionally filtered by a
// case-insensitive search over name, phone, address and city.
func (uc *CustomerUseCase) List(search string) ([]*entity.Customer, error) {
	return uc.customers.List(search)
}

// Update applies the non-nil fields of the request.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.State != nil {
		customer.State = *in.State
	}
	if in.Zip != nil {
		customer.Zip = *in.Zip
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now().UTC()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer record. Dependent jobs, quotes and invoices are
// left in place and keep their customer_id.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customers.Delete(id)
}
