package analytics

import (
	"time"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// DashboardUseCase aggregates the numbers behind the office dashboard.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	jobs      repository.JobRepository
	invoices  repository.InvoiceRepository
}

func NewDashboardUseCase(
	analytics repository.AnalyticsRepository,
	jobs repository.JobRepository,
	invoices repository.InvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, jobs: jobs, invoices: invoices}
}

// GetSummary builds the dashboard: today's schedule plus headline stats.
// "This week" is the rolling seven days starting today; revenue is the sum of
// invoices paid since the first of the current month.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummary, error) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 6).Format("2006-01-02")
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	todaysJobs, err := uc.jobs.List(repository.JobFilter{Date: today})
	if err != nil {
		return nil, err
	}

	totalCustomers, err := uc.analytics.CountCustomers()
	if err != nil {
		return nil, err
	}
	jobsThisWeek, err := uc.jobs.CountScheduledBetween(today, weekEnd)
	if err != nil {
		return nil, err
	}
	pending, err := uc.invoices.CountByStatuses(entity.InvoiceStatusDraft, entity.InvoiceStatusSent, entity.InvoiceStatusPartial)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.analytics.RevenuePaidSince(startOfMonth)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		TodaysJobs: todaysJobs,
		Stats: dto.DashboardStats{
			TotalCustomers:   totalCustomers,
			JobsToday:        len(todaysJobs),
			JobsThisWeek:     jobsThisWeek,
			PendingInvoices:  pending,
			RevenueThisMonth: revenue,
		},
	}, nil
}
