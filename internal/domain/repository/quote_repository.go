package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// QuoteFilter narrows quote listings.
type QuoteFilter struct {
	Status     string
	CustomerID int64 // 0 = all customers
}

// QuoteRepository defines the persistence port for Quote and its line items.
type QuoteRepository interface {
	// Create inserts the quote header and its items.
	Create(quote *entity.Quote) error
	// GetByID loads the quote with its items.
	GetByID(id int64) (*entity.Quote, error)
	// List returns quotes newest first with customer_name joined; items are
	// not loaded.
	List(f QuoteFilter) ([]*entity.Quote, error)
	ListByCustomer(customerID int64) ([]*entity.Quote, error)
	// Update rewrites the header; when replaceItems is true the item rows are
	// replaced wholesale with quote.Items.
	Update(quote *entity.Quote, replaceItems bool) error
}
