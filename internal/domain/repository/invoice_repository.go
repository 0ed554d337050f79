package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Status     string
	CustomerID int64 // 0 = all customers
}

// InvoiceRepository defines the persistence port for Invoice and its line items.
type InvoiceRepository interface {
	// Create inserts the invoice header and its items.
	Create(invoice *entity.Invoice) error
	// GetByID loads the invoice with its items and customer contact fields;
	// payments are attached by the caller.
	GetByID(id int64) (*entity.Invoice, error)
	// List returns invoices newest first with customer_name joined; items are
	// not loaded.
	List(f InvoiceFilter) ([]*entity.Invoice, error)
	ListByCustomer(customerID int64) ([]*entity.Invoice, error)
	// Update rewrites the header; when replaceItems is true the item rows are
	// replaced wholesale with invoice.Items.
	Update(invoice *entity.Invoice, replaceItems bool) error
	// CountByStatuses counts invoices whose status is any of the given values.
	CountByStatuses(statuses ...string) (int, error)
}
