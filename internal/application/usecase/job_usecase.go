package usecase

import (
	"time"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// JobUseCase manages the scheduling board.
type JobUseCase struct {
	jobs      repository.JobRepository
	customers repository.CustomerRepository
	team      repository.TeamMemberRepository
	requests  repository.RequestRepository
	counters  repository.CounterRepository
}

func NewJobUseCase(
	jobs repository.JobRepository,
	customers repository.CustomerRepository,
	team repository.TeamMemberRepository,
	requests repository.RequestRepository,
	counters repository.CounterRepository,
) *JobUseCase {
	return &JobUseCase{jobs: jobs, customers: customers, team: team, requests: requests, counters: counters}
}

func (uc *JobUseCase) validateAssignee(assignedTo *int64) error {
	if assignedTo == nil {
		return nil
	}
	member, err := uc.team.GetByID(*assignedTo)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create schedules a job. When the job originates from a service request the
// request is marked scheduled.
func (uc *JobUseCase) Create(in dto.CreateJobRequest) (*entity.Job, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.JobStatusScheduled
	}
	if !entity.KnownJobStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateAssignee(in.AssignedTo); err != nil {
		return nil, err
	}

	id, err := uc.counters.Next("jobs")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	job := &entity.Job{
		ID:            id,
		CustomerID:    in.CustomerID,
		RequestID:     in.RequestID,
		Title:         in.Title,
		Description:   in.Description,
		Status:        status,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		AssignedTo:    in.AssignedTo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.jobs.Create(job); err != nil {
		return nil, err
	}

	if in.RequestID != nil {
		if req, err := uc.requests.GetByID(*in.RequestID); err == nil && req != nil {
			req.Status = entity.RequestStatusScheduled
			_ = uc.requests.Update(req)
		}
	}
	return job, nil
}

func (uc *JobUseCase) GetByID(id int64) (*entity.Job, error) {
	job, err := uc.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func (uc *JobUseCase) List(f repository.JobFilter) ([]*entity.Job, error) {
	return uc.jobs.List(f)
}

// Update applies the non-nil fields. completed_at is stamped on the first
// transition into completed and never touched again, so reopening and
// re-completing a job keeps the original completion time.
func (uc *JobUseCase) Update(id int64, in dto.UpdateJobRequest) (*entity.Job, error) {
	job, err := uc.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		customer, err := uc.customers.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrInvalidInput
		}
		job.CustomerID = *in.CustomerID
	}
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.ScheduledDate != nil {
		job.ScheduledDate = *in.ScheduledDate
	}
	if in.ScheduledTime != nil {
		job.ScheduledTime = *in.ScheduledTime
	}
	if in.AssignedTo != nil {
		if err := uc.validateAssignee(in.AssignedTo); err != nil {
			return nil, err
		}
		job.AssignedTo = in.AssignedTo
	}
	now := time.Now().UTC()
	if in.Status != nil {
		if !entity.KnownJobStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status == entity.JobStatusCompleted && job.CompletedAt == nil {
			job.CompletedAt = &now
		}
		job.Status = *in.Status
	}
	job.UpdatedAt = now
	if err := uc.jobs.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *JobUseCase) Delete(id int64) error {
	job, err := uc.jobs.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return uc.jobs.Delete(id)
}
