package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

const requestCols = `id, customer_id, title, description, preferred_date, status, created_at`

// RequestRepo implements RequestRepository.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository builds the adapter.
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persists a new service request.
func (r *RequestRepo) Create(req *entity.Request) error {
	query := `INSERT INTO requests (` + requestCols + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		req.ID, req.CustomerID, req.Title, req.Description, req.PreferredDate, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID fetches a request by id; nil when absent.
func (r *RequestRepo) GetByID(id int64) (*entity.Request, error) {
	var req entity.Request
	if err := sqlx.Get(r.q, &req, `SELECT `+requestCols+` FROM requests WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// List returns requests newest first with the customer name joined.
func (r *RequestRepo) List(status string) ([]*entity.Request, error) {
	query := `
		SELECT r.id, r.customer_id, r.title, r.description, r.preferred_date, r.status, r.created_at,
		       COALESCE(c.name, '') AS customer_name
		FROM requests r
		LEFT JOIN customers c ON c.id = r.customer_id`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE r.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY r.created_at DESC`
	var list []*entity.Request
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return list, nil
}

// Update rewrites all mutable fields.
func (r *RequestRepo) Update(req *entity.Request) error {
	query := `
		UPDATE requests
		SET customer_id = ?, title = ?, description = ?, preferred_date = ?, status = ?
		WHERE id = ?`
	_, err := r.q.Exec(query,
		req.CustomerID, req.Title, req.Description, req.PreferredDate, req.Status, req.ID,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// Delete removes the request row.
func (r *RequestRepo) Delete(id int64) error {
	if _, err := r.q.Exec(`DELETE FROM requests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}
