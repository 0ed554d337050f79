package dto

import "github.com/shopspring/decimal"

// LineItemRequest one line of a quote or invoice body. Quantities and prices
// arrive as JSON numbers or strings; decimal accepts both.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateQuoteRequest body for POST /api/quotes.
type CreateQuoteRequest struct {
	CustomerID  int64             `json:"customer_id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	ValidUntil  string            `json:"valid_until,omitempty"`
	Items       []LineItemRequest `json:"items,omitempty"`
}

// UpdateQuoteRequest body for PUT /api/quotes/:id. Nil fields are left as
// they are; a non-nil Items replaces the item list wholesale and forces a
// totals recompute under the current tax rate.
type UpdateQuoteRequest struct {
	CustomerID  *int64             `json:"customer_id,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Status      *string            `json:"status,omitempty"`
	ValidUntil  *string            `json:"valid_until,omitempty"`
	Items       *[]LineItemRequest `json:"items,omitempty"`
}

// ConvertQuoteRequest body for POST /api/quotes/:id/convert.
type ConvertQuoteRequest struct {
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	AssignedTo    *int64 `json:"assigned_to,omitempty"`
}

// ConvertQuoteResponse result of a quote conversion.
type ConvertQuoteResponse struct {
	JobID int64 `json:"job_id"`
}

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerID int64             `json:"customer_id"`
	JobID      *int64            `json:"job_id,omitempty"`
	DueDate    string            `json:"due_date,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Items      []LineItemRequest `json:"items,omitempty"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Same partial-update
// semantics as quotes; status is not writable here, it only moves through
// send and payment application.
type UpdateInvoiceRequest struct {
	JobID   *int64             `json:"job_id,omitempty"`
	DueDate *string            `json:"due_date,omitempty"`
	Notes   *string            `json:"notes,omitempty"`
	Items   *[]LineItemRequest `json:"items,omitempty"`
}

// CreatePaymentRequest body for POST /api/payments. Date defaults to today
// when empty.
type CreatePaymentRequest struct {
	InvoiceID int64           `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Date      string          `json:"date,omitempty"`
}
