package usecase

import (
	"time"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// RequestUseCase manages inbound service requests.
type RequestUseCase struct {
	requests  repository.RequestRepository
	customers repository.CustomerRepository
	counters  repository.CounterRepository
}

func NewRequestUseCase(
	requests repository.RequestRepository,
	customers repository.CustomerRepository,
	counters repository.CounterRepository,
) *RequestUseCase {
	return &RequestUseCase{requests: requests, customers: customers, counters: counters}
}

// Create records a service request with status new.
func (uc *RequestUseCase) Create(in dto.CreateRequestRequest) (*entity.Request, error) {
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
	id, err := uc.counters.Next("requests")
	if err != nil {
		return nil, err
	}
	request := &entity.Request{
		ID:            id,
		CustomerID:    in.CustomerID,
		Title:         in.Title,
		Description:   in.Description,
		PreferredDate: in.PreferredDate,
		Status:        entity.RequestStatusNew,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.requests.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *RequestUseCase) GetByID(id int64) (*entity.Request, error) {
	request, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return request, nil
}

func (uc *RequestUseCase) List(status string) ([]*entity.Request, error) {
	return uc.requests.List(status)
}

func (uc *RequestUseCase) Update(id int64, in dto.UpdateRequestRequest) (*entity.Request, error) {
	request, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
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
		request.CustomerID = *in.CustomerID
	}
	if in.Title != nil {
		request.Title = *in.Title
	}
	if in.Description != nil {
		request.Description = *in.Description
	}
	if in.PreferredDate != nil {
		request.PreferredDate = *in.PreferredDate
	}
	if in.Status != nil {
		if !entity.KnownRequestStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		request.Status = *in.Status
	}
	if err := uc.requests.Update(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *RequestUseCase) Delete(id int64) error {
	request, err := uc.requests.GetByID(id)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	return uc.requests.Delete(id)
}
