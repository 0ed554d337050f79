package dto

import (
	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
)

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id; nil fields keep
// their current value.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// CustomerDetail response for GET /api/customers/:id: the customer together
// with their job and invoice history.
type CustomerDetail struct {
	Customer *entity.Customer  `json:"customer"`
	Jobs     []*entity.Job     `json:"jobs"`
	Invoices []*entity.Invoice `json:"invoices"`
}

// CreateJobRequest body for POST /api/jobs.
type CreateJobRequest struct {
	CustomerID    int64  `json:"customer_id"`
	RequestID     *int64 `json:"request_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	AssignedTo    *int64 `json:"assigned_to,omitempty"`
}

// UpdateJobRequest body for PUT /api/jobs/:id.
type UpdateJobRequest struct {
	CustomerID    *int64  `json:"customer_id,omitempty"`
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	AssignedTo    *int64  `json:"assigned_to,omitempty"`
}

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
	IsTaxable   *bool           `json:"is_taxable,omitempty"` // defaults to true
}

// UpdateProductRequest body for PUT /api/products/:id.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	IsTaxable   *bool            `json:"is_taxable,omitempty"`
}

// CreateTeamMemberRequest body for POST /api/team.
type CreateTeamMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// UpdateTeamMemberRequest body for PUT /api/team/:id.
type UpdateTeamMemberRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// CreateRequestRequest body for POST /api/requests.
type CreateRequestRequest struct {
	CustomerID    int64  `json:"customer_id"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
}

// UpdateRequestRequest body for PUT /api/requests/:id.
type UpdateRequestRequest struct {
	CustomerID    *int64  `json:"customer_id,omitempty"`
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	PreferredDate *string `json:"preferred_date,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// UpdateSettingsRequest body for PUT /api/settings; nil fields keep their
// current value. Tax-rate changes only affect future computations.
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyPhone   *string `json:"company_phone,omitempty"`
	CompanyEmail   *string `json:"company_email,omitempty"`
	CompanyAddress *string `json:"company_address,omitempty"`
	TaxRate        *string `json:"tax_rate,omitempty"`
	InvoicePrefix  *string `json:"invoice_prefix,omitempty"`
	QuotePrefix    *string `json:"quote_prefix,omitempty"`
}
