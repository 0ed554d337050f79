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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerCols = `id, name, email, phone, address, city, state, zip, notes, portal_token, created_at, updated_at`

// CustomerRepo implements CustomerRepository (usable on the handle or a tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerCols + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Notes,
		c.PortalToken, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by id; nil when absent.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers WHERE id = ?`
	var c entity.Customer
	if err := sqlx.Get(r.q, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByPortalToken fetches a customer by its opaque portal token; nil when absent.
func (r *CustomerRepo) GetByPortalToken(token string) (*entity.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers WHERE portal_token = ?`
	var c entity.Customer
	if err := sqlx.Get(r.q, &c, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by portal token: %w", err)
	}
	return &c, nil
}

// List returns customers sorted by name, optionally filtered by a
// case-insensitive search over name, phone, address and city.
func (r *CustomerRepo) List(search string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers`
	args := []interface{}{}
	if search != "" {
		query += `
		WHERE lower(name) LIKE ? OR lower(phone) LIKE ? OR lower(address) LIKE ? OR lower(city) LIKE ?`
		like := "%" + strings.ToLower(search) + "%"
		args = append(args, like, like, like, like)
	}
	query += ` ORDER BY name COLLATE NOCASE`
	var list []*entity.Customer
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}

// Update rewrites all mutable fields.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = ?, email = ?, phone = ?, address = ?, city = ?, state = ?, zip = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.Exec(query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Notes, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes the customer row. Dependents keep their customer_id; the
// reference graph is weak on purpose.
func (r *CustomerRepo) Delete(id int64) error {
	if _, err := r.q.Exec(`DELETE FROM customers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
