package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// ProductRepository defines the persistence port for catalog entries.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
