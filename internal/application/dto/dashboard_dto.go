package dto

import (
	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
)

// DashboardStats headline numbers for the dashboard widgets.
type DashboardStats struct {
	TotalCustomers   int             `json:"total_customers"`
	JobsToday        int             `json:"jobs_today"`
	JobsThisWeek     int             `json:"jobs_this_week"`
	PendingInvoices  int             `json:"pending_invoices"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
}

// DashboardSummary response for GET /api/dashboard.
type DashboardSummary struct {
	TodaysJobs []*entity.Job  `json:"todaysJobs"`
	Stats      DashboardStats `json:"stats"`
}

// PortalView response for GET /api/portal/:token: a customer's read-only
// window onto their own records.
type PortalView struct {
	Customer *entity.Customer  `json:"customer"`
	Jobs     []*entity.Job     `json:"jobs"`
	Quotes   []*entity.Quote   `json:"quotes"`
	Invoices []*entity.Invoice `json:"invoices"`
}
