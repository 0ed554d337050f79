package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productCols = `id, name, description, price, unit, is_taxable, created_at`

// ProductRepo implements ProductRepository.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new catalog entry.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `INSERT INTO products (` + productCols + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, p.ID, p.Name, p.Description, p.Price, p.Unit, p.IsTaxable, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by id; nil when absent.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	if err := sqlx.Get(r.q, &p, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List returns all products sorted by name.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	query := `SELECT ` + productCols + ` FROM products ORDER BY name COLLATE NOCASE`
	if err := sqlx.Select(r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Update rewrites all mutable fields.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = ?, description = ?, price = ?, unit = ?, is_taxable = ?
		WHERE id = ?`
	if _, err := r.q.Exec(query, p.Name, p.Description, p.Price, p.Unit, p.IsTaxable, p.ID); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes the catalog entry. Documents keep their copied values.
func (r *ProductRepo) Delete(id int64) error {
	if _, err := r.q.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
