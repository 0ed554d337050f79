package entity

import "time"

// Service request statuses.
const (
	RequestStatusNew       = "new"
	RequestStatusScheduled = "scheduled"
	RequestStatusConverted = "converted"
	RequestStatusDeclined  = "declined"
)

// KnownRequestStatus reports whether s is one of the request statuses above.
func KnownRequestStatus(s string) bool {
	switch s {
	case RequestStatusNew, RequestStatusScheduled, RequestStatusConverted, RequestStatusDeclined:
		return true
	}
	return false
}

// Request is an inbound service request; a job may record it as provenance
// via request_id.
type Request struct {
	ID            int64     `db:"id" json:"id"`
	CustomerID    int64     `db:"customer_id" json:"customer_id"`
	Title         string    `db:"title" json:"title,omitempty"`
	Description   string    `db:"description" json:"description,omitempty"`
	PreferredDate string    `db:"preferred_date" json:"preferred_date,omitempty"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Joined for list views; not a column of requests.
	CustomerName string `db:"customer_name" json:"customer_name,omitempty"`
}
