package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

const quoteCols = `id, quote_number, customer_id, title, description, status,
	subtotal, tax, total, valid_until, converted_job_id, created_at, updated_at`

// QuoteRepo implements QuoteRepository (usable on the handle or a tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository builds the adapter.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persists the quote header and its items.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteCols + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		quote.ID, quote.QuoteNumber, quote.CustomerID, quote.Title, quote.Description, quote.Status,
		quote.Subtotal, quote.Tax, quote.Total, quote.ValidUntil, quote.ConvertedJobID,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return r.insertItems(quote.ID, quote.Items)
}

// GetByID loads a quote with its items; nil when absent.
func (r *QuoteRepo) GetByID(id int64) (*entity.Quote, error) {
	query := `
		SELECT q.id, q.quote_number, q.customer_id, q.title, q.description, q.status,
		       q.subtotal, q.tax, q.total, q.valid_until, q.converted_job_id, q.created_at, q.updated_at,
		       COALESCE(c.name, '') AS customer_name
		FROM quotes q
		LEFT JOIN customers c ON c.id = q.customer_id
		WHERE q.id = ?`
	var quote entity.Quote
	if err := sqlx.Get(r.q, &quote, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	items, err := r.items(id)
	if err != nil {
		return nil, err
	}
	quote.Items = items
	return &quote, nil
}

// List returns quotes newest first with the customer name joined. Items are
// not loaded.
func (r *QuoteRepo) List(f repository.QuoteFilter) ([]*entity.Quote, error) {
	query := `
		SELECT q.id, q.quote_number, q.customer_id, q.title, q.description, q.status,
		       q.subtotal, q.tax, q.total, q.valid_until, q.converted_job_id, q.created_at, q.updated_at,
		       COALESCE(c.name, '') AS customer_name
		FROM quotes q
		LEFT JOIN customers c ON c.id = q.customer_id
		WHERE 1=1`
	args := []interface{}{}
	if f.Status != "" {
		query += ` AND q.status = ?`
		args = append(args, f.Status)
	}
	if f.CustomerID != 0 {
		query += ` AND q.customer_id = ?`
		args = append(args, f.CustomerID)
	}
	query += ` ORDER BY q.created_at DESC`
	var list []*entity.Quote
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return list, nil
}

// ListByCustomer returns a customer's quotes newest first, without items.
func (r *QuoteRepo) ListByCustomer(customerID int64) ([]*entity.Quote, error) {
	return r.List(repository.QuoteFilter{CustomerID: customerID})
}

// Update rewrites the header and, when replaceItems is set, replaces the item
// rows wholesale.
func (r *QuoteRepo) Update(quote *entity.Quote, replaceItems bool) error {
	query := `
		UPDATE quotes
		SET customer_id = ?, title = ?, description = ?, status = ?,
		    subtotal = ?, tax = ?, total = ?, valid_until = ?, converted_job_id = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.Exec(query,
		quote.CustomerID, quote.Title, quote.Description, quote.Status,
		quote.Subtotal, quote.Tax, quote.Total, quote.ValidUntil, quote.ConvertedJobID,
		quote.UpdatedAt, quote.ID,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if !replaceItems {
		return nil
	}
	if _, err := r.q.Exec(`DELETE FROM quote_items WHERE quote_id = ?`, quote.ID); err != nil {
		return fmt.Errorf("clear quote items: %w", err)
	}
	return r.insertItems(quote.ID, quote.Items)
}

func (r *QuoteRepo) items(quoteID int64) ([]entity.LineItem, error) {
	query := `
		SELECT description, quantity, unit_price, line_total
		FROM quote_items WHERE quote_id = ? ORDER BY position`
	var items []entity.LineItem
	if err := sqlx.Select(r.q, &items, query, quoteID); err != nil {
		return nil, fmt.Errorf("load quote items: %w", err)
	}
	return items, nil
}

func (r *QuoteRepo) insertItems(quoteID int64, items []entity.LineItem) error {
	query := `
		INSERT INTO quote_items (quote_id, position, description, quantity, unit_price, line_total)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, it := range items {
		if _, err := r.q.Exec(query, quoteID, i, it.Description, it.Quantity, it.UnitPrice, it.LineTotal); err != nil {
			return fmt.Errorf("insert quote item: %w", err)
		}
	}
	return nil
}
