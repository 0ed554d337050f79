package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Partial and paid are only reachable through payment
// application; sent goes straight to paid when a single payment covers the
// full balance.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
)

// Invoice carries the running balance state: AmountPaid is always recomputed
// from the payment ledger, never incremented, and BalanceDue = Total - AmountPaid.
type Invoice struct {
	ID            int64           `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	JobID         *int64          `db:"job_id" json:"job_id,omitempty"`
	CustomerID    int64           `db:"customer_id" json:"customer_id"`
	Status        string          `db:"status" json:"status"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	Tax           decimal.Decimal `db:"tax" json:"tax"`
	Total         decimal.Decimal `db:"total" json:"total"`
	AmountPaid    decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	BalanceDue    decimal.Decimal `db:"balance_due" json:"balance_due"`
	DueDate       string          `db:"due_date" json:"due_date,omitempty"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	SentAt        *time.Time      `db:"sent_at" json:"sent_at,omitempty"`
	PaidAt        *time.Time      `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`

	Items    []LineItem `db:"-" json:"items,omitempty"`
	Payments []*Payment `db:"-" json:"payments,omitempty"`

	// Joined for list/detail views.
	CustomerName    string `db:"customer_name" json:"customer_name,omitempty"`
	CustomerAddress string `db:"customer_address" json:"customer_address,omitempty"`
	CustomerEmail   string `db:"customer_email" json:"customer_email,omitempty"`
	CustomerPhone   string `db:"customer_phone" json:"customer_phone,omitempty"`
}
