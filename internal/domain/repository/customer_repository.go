package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByPortalToken(token string) (*entity.Customer, error)
	// List returns customers sorted by name; search matches name, phone,
	// address or city, case-insensitive.
	List(search string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}
