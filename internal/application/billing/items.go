package billing

import (
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/pricing"
)

// buildItems validates and converts request line items. Negative quantities
// or prices are rejected; zero values pass through and simply contribute
// nothing to the subtotal.
func buildItems(in []dto.LineItemRequest) ([]entity.LineItem, error) {
	items := make([]entity.LineItem, 0, len(in))
	for _, it := range in {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return pricing.Normalize(items), nil
}
