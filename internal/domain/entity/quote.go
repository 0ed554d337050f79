package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusDeclined = "declined"
	QuoteStatusExpired  = "expired"
)

// Quote is an estimate for a customer. Totals are derived from the items and
// the tax rate in force when the quote was created or last updated.
// ConvertedJobID is set once, when the quote is converted into a job.
type Quote struct {
	ID             int64           `db:"id" json:"id"`
	QuoteNumber    string          `db:"quote_number" json:"quote_number"`
	CustomerID     int64           `db:"customer_id" json:"customer_id"`
	Title          string          `db:"title" json:"title,omitempty"`
	Description    string          `db:"description" json:"description,omitempty"`
	Status         string          `db:"status" json:"status"`
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	Tax            decimal.Decimal `db:"tax" json:"tax"`
	Total          decimal.Decimal `db:"total" json:"total"`
	ValidUntil     string          `db:"valid_until" json:"valid_until,omitempty"`
	ConvertedJobID *int64          `db:"converted_job_id" json:"converted_job_id,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`

	Items []LineItem `db:"-" json:"items,omitempty"`

	// Joined for list views.
	CustomerName string `db:"customer_name" json:"customer_name,omitempty"`
}

// KnownQuoteStatus reports whether s is one of the quote lifecycle states.
func KnownQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusDeclined, QuoteStatusExpired:
		return true
	}
	return false
}
