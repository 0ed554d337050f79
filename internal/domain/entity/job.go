package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job statuses.
const (
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// KnownJobStatus reports whether s is one of the job statuses above.
func KnownJobStatus(s string) bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a scheduled visit. QuoteID/RequestID record provenance when the job
// came out of a quote conversion or a service request. CompletedAt is set
// exactly once, on the first transition into completed.
type Job struct {
	ID             int64           `db:"id" json:"id"`
	CustomerID     int64           `db:"customer_id" json:"customer_id"`
	QuoteID        *int64          `db:"quote_id" json:"quote_id,omitempty"`
	RequestID      *int64          `db:"request_id" json:"request_id,omitempty"`
	Title          string          `db:"title" json:"title,omitempty"`
	Description    string          `db:"description" json:"description,omitempty"`
	Status         string          `db:"status" json:"status"`
	ScheduledDate  string          `db:"scheduled_date" json:"scheduled_date,omitempty"`
	ScheduledTime  string          `db:"scheduled_time" json:"scheduled_time,omitempty"`
	AssignedTo     *int64          `db:"assigned_to" json:"assigned_to,omitempty"`
	LineItems      LineItems       `db:"line_items" json:"line_items,omitempty"`
	EstimatedTotal decimal.Decimal `db:"estimated_total" json:"estimated_total"`
	CompletedAt    *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`

	// Joined for list/detail views; not columns of jobs.
	CustomerName    string `db:"customer_name" json:"customer_name,omitempty"`
	CustomerAddress string `db:"customer_address" json:"customer_address,omitempty"`
	CustomerPhone   string `db:"customer_phone" json:"customer_phone,omitempty"`
	AssignedToName  string `db:"assigned_to_name" json:"assigned_to_name,omitempty"`
}
