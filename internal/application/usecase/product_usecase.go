package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// ProductUseCase manages the service and parts catalog.
type ProductUseCase struct {
	products repository.ProductRepository
	counters repository.CounterRepository
}

func NewProductUseCase(products repository.ProductRepository, counters repository.CounterRepository) *ProductUseCase {
	return &ProductUseCase{products: products, counters: counters}
}

// Create adds a catalog entry. Price may be zero but not negative; entries
// are taxable unless the request says otherwise.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.counters.Next("products")
	if err != nil {
		return nil, err
	}
	taxable := true
	if in.IsTaxable != nil {
		taxable = *in.IsTaxable
	}
	product := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		IsTaxable:   taxable,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) GetByID(id int64) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.products.List()
}

func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.IsTaxable != nil {
		product.IsTaxable = *in.IsTaxable
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}
