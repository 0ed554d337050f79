package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// JobFilter narrows job listings.
type JobFilter struct {
	Status     string
	Date       string // exact scheduled_date match (YYYY-MM-DD)
	CustomerID int64  // 0 = all customers
}

// JobRepository defines the persistence port for Job.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id int64) (*entity.Job, error)
	// List joins customer name/address/phone and the assigned team member's
	// name, sorted by scheduled_date then scheduled_time.
	List(f JobFilter) ([]*entity.Job, error)
	// ListByCustomer returns a customer's jobs newest scheduled_date first.
	ListByCustomer(customerID int64) ([]*entity.Job, error)
	Update(job *entity.Job) error
	Delete(id int64) error
	// CountScheduledBetween counts jobs with from <= scheduled_date <= to.
	CountScheduledBetween(from, to string) (int, error)
}
