package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one row of the append-only ledger: never mutated, never deleted.
// CustomerID is denormalized from the invoice at insertion time.
type Payment struct {
	ID         int64           `db:"id" json:"id"`
	InvoiceID  int64           `db:"invoice_id" json:"invoice_id"`
	CustomerID int64           `db:"customer_id" json:"customer_id"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Method     string          `db:"method" json:"method,omitempty"`
	Reference  string          `db:"reference" json:"reference,omitempty"`
	Date       string          `db:"date" json:"date"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
