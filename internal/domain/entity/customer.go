package entity

import "time"

// Customer is the root of the reference graph: jobs, quotes, invoices and
// payments point at it by id, without referential integrity (a dependent may
// outlive its customer).
type Customer struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email,omitempty"`
	Phone       string    `db:"phone" json:"phone,omitempty"`
	Address     string    `db:"address" json:"address,omitempty"`
	City        string    `db:"city" json:"city,omitempty"`
	State       string    `db:"state" json:"state,omitempty"`
	Zip         string    `db:"zip" json:"zip,omitempty"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	PortalToken string    `db:"portal_token" json:"portal_token"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
