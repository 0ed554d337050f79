package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

const jobCols = `id, customer_id, quote_id, request_id, title, description, status,
	scheduled_date, scheduled_time, assigned_to, line_items, estimated_total,
	completed_at, created_at, updated_at`

// joined selection used by list/detail queries.
const jobJoinCols = `j.id, j.customer_id, j.quote_id, j.request_id, j.title, j.description, j.status,
	j.scheduled_date, j.scheduled_time, j.assigned_to, j.line_items, j.estimated_total,
	j.completed_at, j.created_at, j.updated_at,
	COALESCE(c.name, '') AS customer_name,
	COALESCE(c.address, '') AS customer_address,
	COALESCE(c.phone, '') AS customer_phone,
	COALESCE(t.name, '') AS assigned_to_name`

// JobRepo implements JobRepository (usable on the handle or a tx).
type JobRepo struct {
	q Querier
}

// NewJobRepository builds the adapter.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persists a new job.
func (r *JobRepo) Create(j *entity.Job) error {
	query := `
		INSERT INTO jobs (` + jobCols + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		j.ID, j.CustomerID, j.QuoteID, j.RequestID, j.Title, j.Description, j.Status,
		j.ScheduledDate, j.ScheduledTime, j.AssignedTo, j.LineItems, j.EstimatedTotal,
		j.CompletedAt, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID fetches a job with customer and assignee fields joined; nil when absent.
func (r *JobRepo) GetByID(id int64) (*entity.Job, error) {
	query := `
		SELECT ` + jobJoinCols + `
		FROM jobs j
		LEFT JOIN customers c ON c.id = j.customer_id
		LEFT JOIN team_members t ON t.id = j.assigned_to
		WHERE j.id = ?`
	var j entity.Job
	if err := sqlx.Get(r.q, &j, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// List returns jobs sorted by scheduled date then time, with customer and
// assignee fields joined.
func (r *JobRepo) List(f repository.JobFilter) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobJoinCols + `
		FROM jobs j
		LEFT JOIN customers c ON c.id = j.customer_id
		LEFT JOIN team_members t ON t.id = j.assigned_to
		WHERE 1=1`
	args := []interface{}{}
	if f.Status != "" {
		query += ` AND j.status = ?`
		args = append(args, f.Status)
	}
	if f.Date != "" {
		query += ` AND j.scheduled_date = ?`
		args = append(args, f.Date)
	}
	if f.CustomerID != 0 {
		query += ` AND j.customer_id = ?`
		args = append(args, f.CustomerID)
	}
	query += ` ORDER BY j.scheduled_date, j.scheduled_time`
	var list []*entity.Job
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return list, nil
}

// ListByCustomer returns a customer's jobs newest scheduled date first.
func (r *JobRepo) ListByCustomer(customerID int64) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobCols + ` FROM jobs
		WHERE customer_id = ?
		ORDER BY scheduled_date DESC, scheduled_time DESC`
	var list []*entity.Job
	if err := sqlx.Select(r.q, &list, query, customerID); err != nil {
		return nil, fmt.Errorf("list jobs by customer: %w", err)
	}
	return list, nil
}

// Update rewrites all mutable fields, completed_at included.
func (r *JobRepo) Update(j *entity.Job) error {
	query := `
		UPDATE jobs
		SET customer_id = ?, quote_id = ?, request_id = ?, title = ?, description = ?, status = ?,
		    scheduled_date = ?, scheduled_time = ?, assigned_to = ?, line_items = ?, estimated_total = ?,
		    completed_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.Exec(query,
		j.CustomerID, j.QuoteID, j.RequestID, j.Title, j.Description, j.Status,
		j.ScheduledDate, j.ScheduledTime, j.AssignedTo, j.LineItems, j.EstimatedTotal,
		j.CompletedAt, j.UpdatedAt, j.ID,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete removes the job row.
func (r *JobRepo) Delete(id int64) error {
	if _, err := r.q.Exec(`DELETE FROM jobs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// CountScheduledBetween counts jobs with from <= scheduled_date <= to.
func (r *JobRepo) CountScheduledBetween(from, to string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM jobs WHERE scheduled_date >= ? AND scheduled_date <= ?`
	if err := sqlx.Get(r.q, &n, query, from, to); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}
