package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceCols = `id, invoice_number, job_id, customer_id, status,
	subtotal, tax, total, amount_paid, balance_due, due_date, notes,
	sent_at, paid_at, created_at, updated_at`

// InvoiceRepo implements InvoiceRepository (usable on the handle or a tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header and its items.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceCols + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		inv.ID, inv.InvoiceNumber, inv.JobID, inv.CustomerID, inv.Status,
		inv.Subtotal, inv.Tax, inv.Total, inv.AmountPaid, inv.BalanceDue, inv.DueDate, inv.Notes,
		inv.SentAt, inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return r.insertItems(inv.ID, inv.Items)
}

// GetByID loads an invoice with its items and the customer's contact fields;
// nil when absent. Payments are attached by the caller from the ledger.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.job_id, i.customer_id, i.status,
		       i.subtotal, i.tax, i.total, i.amount_paid, i.balance_due, i.due_date, i.notes,
		       i.sent_at, i.paid_at, i.created_at, i.updated_at,
		       COALESCE(c.name, '') AS customer_name,
		       COALESCE(c.address, '') AS customer_address,
		       COALESCE(c.email, '') AS customer_email,
		       COALESCE(c.phone, '') AS customer_phone
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE i.id = ?`
	var inv entity.Invoice
	if err := sqlx.Get(r.q, &inv, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.items(id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

// List returns invoices newest first with the customer name joined. Items are
// not loaded.
func (r *InvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.job_id, i.customer_id, i.status,
		       i.subtotal, i.tax, i.total, i.amount_paid, i.balance_due, i.due_date, i.notes,
		       i.sent_at, i.paid_at, i.created_at, i.updated_at,
		       COALESCE(c.name, '') AS customer_name
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE 1=1`
	args := []interface{}{}
	if f.Status != "" {
		query += ` AND i.status = ?`
		args = append(args, f.Status)
	}
	if f.CustomerID != 0 {
		query += ` AND i.customer_id = ?`
		args = append(args, f.CustomerID)
	}
	query += ` ORDER BY i.created_at DESC`
	var list []*entity.Invoice
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return list, nil
}

// ListByCustomer returns a customer's invoices newest first, without items.
func (r *InvoiceRepo) ListByCustomer(customerID int64) ([]*entity.Invoice, error) {
	return r.List(repository.InvoiceFilter{CustomerID: customerID})
}

// Update rewrites the header and, when replaceItems is set, replaces the item
// rows wholesale.
func (r *InvoiceRepo) Update(inv *entity.Invoice, replaceItems bool) error {
	query := `
		UPDATE invoices
		SET job_id = ?, customer_id = ?, status = ?,
		    subtotal = ?, tax = ?, total = ?, amount_paid = ?, balance_due = ?,
		    due_date = ?, notes = ?, sent_at = ?, paid_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.Exec(query,
		inv.JobID, inv.CustomerID, inv.Status,
		inv.Subtotal, inv.Tax, inv.Total, inv.AmountPaid, inv.BalanceDue,
		inv.DueDate, inv.Notes, inv.SentAt, inv.PaidAt, inv.UpdatedAt, inv.ID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if !replaceItems {
		return nil
	}
	if _, err := r.q.Exec(`DELETE FROM invoice_items WHERE invoice_id = ?`, inv.ID); err != nil {
		return fmt.Errorf("clear invoice items: %w", err)
	}
	return r.insertItems(inv.ID, inv.Items)
}

// CountByStatuses counts invoices whose status is any of the given values.
func (r *InvoiceRepo) CountByStatuses(statuses ...string) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	query := `SELECT COUNT(*) FROM invoices WHERE status IN (` + placeholders + `)`
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		args[i] = s
	}
	var n int
	if err := sqlx.Get(r.q, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepo) items(invoiceID int64) ([]entity.LineItem, error) {
	query := `
		SELECT description, quantity, unit_price, line_total
		FROM invoice_items WHERE invoice_id = ? ORDER BY position`
	var items []entity.LineItem
	if err := sqlx.Select(r.q, &items, query, invoiceID); err != nil {
		return nil, fmt.Errorf("load invoice items: %w", err)
	}
	return items, nil
}

func (r *InvoiceRepo) insertItems(invoiceID int64, items []entity.LineItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, position, description, quantity, unit_price, line_total)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, it := range items {
		if _, err := r.q.Exec(query, invoiceID, i, it.Description, it.Quantity, it.UnitPrice, it.LineTotal); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}
