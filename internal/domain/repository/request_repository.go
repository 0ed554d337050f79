package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// RequestRepository defines the persistence port for service requests.
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id int64) (*entity.Request, error)
	// List returns requests newest first with customer_name joined; status
	// filters when non-empty.
	List(status string) ([]*entity.Request, error)
	Update(request *entity.Request) error
	Delete(id int64) error
}
